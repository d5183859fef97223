package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/catalog/buses
func GetBuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buses": wizardSvc.Catalog.Buses})
}

// GET /api/catalog/locations
func GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": wizardSvc.Catalog.Locations})
}
