package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"

	"bluebus/internal/domain"
	"bluebus/internal/domain/models"
	"bluebus/internal/http/middleware"
	"bluebus/internal/repositories"
	"bluebus/internal/utils"
)

// GET /api/bookings — the caller's own bookings, most recent first.
func ListMyBookings(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	repo := repositories.BookingRepository{}
	records, err := repo.ListByUser(user.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records, "count": len(records)})
}

// GET /api/bookings/:id/e-ticket — PDF ticket for one booking. Only
// the booking owner or an admin may download it.
func GetBookingETicketPDF(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", nil)
		return
	}

	repo := repositories.BookingRepository{}
	record, err := repo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondDomainError(c, err)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to load booking", err)
		}
		return
	}

	if record.UserID != user.UserID && !user.IsAdmin() {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}

	pdfBytes, filename, err := buildETicketPDF(record)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build e-ticket PDF", err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func buildETicketPDF(d models.BookingRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BLUE BUS E-TICKET")
	pdf.Ln(12)

	seatCount := len(utils.SplitSeatList(d.Seats))

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", safe(d.Name, "-")),
		fmt.Sprintf("Email       : %s", safe(d.Email, "-")),
		fmt.Sprintf("Phone       : %s", safe(d.Phone, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(d.Source, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Date        : %s", safe(d.JourneyDate, "-")),
		fmt.Sprintf("Bus         : %s (%s)", safe(d.BusName, "-"), safe(d.BusType, "-")),
		fmt.Sprintf("Seats (%d)   : %s", seatCount, safe(d.Seats, "-")),
		fmt.Sprintf("Total Fare  : %s", utils.FormatINR(d.TotalFare)),
		fmt.Sprintf("Booking Ref : %s", safe(d.Reference, "-")),
		fmt.Sprintf("Booked At   : %s", safe(d.CreatedAt, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this e-ticket at departure. Valid for the listed seats only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", d.ID, safeFilenamePart(d.Name))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

var filenameCleaner = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func safeFilenamePart(s string) string {
	out := filenameCleaner.ReplaceAllString(s, "_")
	if out == "" {
		return "booking"
	}
	return out
}
