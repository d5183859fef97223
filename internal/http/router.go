package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "bluebus/internal/config"
	h "bluebus/internal/http/handlers"
	"bluebus/internal/http/middleware"
	"bluebus/internal/services"
)

func NewRouter(env intconfig.Env, wizard *services.WizardService) *gin.Engine {
	h.Configure(env, wizard)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Catalog (public, static inventory)
		cat := api.Group("/catalog")
		cat.GET("/buses", h.GetBuses)
		cat.GET("/locations", h.GetLocations)

		secured := api.Group("", middleware.RequireAuth([]byte(env.JWTSecret)))

		// Booking wizard (user accounts only; admins have no session)
		wiz := secured.Group("/wizard", middleware.RequireRoles("user"))
		wiz.GET("", h.GetWizard)
		wiz.POST("/search", h.SearchJourney)
		wiz.POST("/bus", h.SelectBus)
		wiz.POST("/seats/toggle", h.ToggleSeat)
		wiz.POST("/proceed", h.ProceedToPayment)
		wiz.POST("/confirm", h.ConfirmBooking)
		wiz.POST("/reset", h.ResetWizard)

		// Bookings
		bookings := secured.Group("/bookings")
		bookings.GET("", h.ListMyBookings)
		bookings.GET("/:id/e-ticket", h.GetBookingETicketPDF)

		// Admin
		admin := secured.Group("/admin", middleware.RequireRoles("admin"))
		admin.GET("/bookings", h.AdminListBookings)
	}

	return r
}
