package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluebus/internal/domain/models"
	"bluebus/internal/http/middleware"
	"bluebus/internal/utils"
)

// GET /api/wizard
func GetWizard(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	c.JSON(http.StatusOK, wizardSvc.Snapshot(user))
}

// POST /api/wizard/search
func SearchJourney(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req models.JourneyQuery
	if !BindJSONOrError(c, &req) {
		return
	}

	snap, err := wizardSvc.Search(user, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type selectBusRequest struct {
	BusName string `json:"bus_name"`
}

// POST /api/wizard/bus
func SelectBus(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req selectBusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	snap, err := wizardSvc.SelectBus(user, req.BusName)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type toggleSeatRequest struct {
	Seat string `json:"seat"`
}

// POST /api/wizard/seats/toggle
func ToggleSeat(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req toggleSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	snap, err := wizardSvc.ToggleSeat(user, req.Seat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /api/wizard/proceed
func ProceedToPayment(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	snap, err := wizardSvc.Proceed(user)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /api/wizard/confirm
func ConfirmBooking(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var req models.PassengerDetails
	if !BindJSONOrError(c, &req) {
		return
	}

	record, snap, err := wizardSvc.Confirm(user, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "wizard", "confirm", "booking "+record.Reference)
	c.JSON(http.StatusCreated, gin.H{
		"message": "booking confirmed",
		"booking": record,
		"session": snap,
	})
}

// POST /api/wizard/reset
func ResetWizard(c *gin.Context) {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	c.JSON(http.StatusOK, wizardSvc.Reset(user))
}
