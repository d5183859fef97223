package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bluebus/internal/domain"
	"bluebus/internal/domain/models"
	"bluebus/internal/http/middleware"
	"bluebus/internal/repositories"
	"bluebus/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to query user", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	claims := middleware.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user "+user.Username)
	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "username and password are required", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	repo := repositories.UserRepository{}
	id, err := repo.Create(username, string(hash), models.RoleUser)
	if err != nil {
		if domain.IsConflict(err) {
			RespondDomainError(c, err)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to create user", err)
		}
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "user "+username)
	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user": gin.H{
			"id":       id,
			"username": username,
			"role":     models.RoleUser,
		},
	})
}
