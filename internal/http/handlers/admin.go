package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluebus/internal/repositories"
)

// GET /api/admin/bookings — all bookings, most recent first.
func AdminListBookings(c *gin.Context) {
	repo := repositories.BookingRepository{}
	records, err := repo.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": records,
		"count":    len(records),
	})
}
