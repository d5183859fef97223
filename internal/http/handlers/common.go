package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "bluebus/internal/config"
	"bluebus/internal/http/middleware"
	"bluebus/internal/services"
)

var (
	jwtSecret []byte
	wizardSvc *services.WizardService
)

// Configure wires shared handler dependencies once at startup.
func Configure(env intconfig.Env, svc *services.WizardService) {
	jwtSecret = []byte(env.JWTSecret)
	wizardSvc = svc
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
