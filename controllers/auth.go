package controllers

import (
	"errors"
	"hotelpro-backend/config"
	"hotelpro-backend/utils"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Auth holds the single admin account the backend accepts.
type Auth struct {
	Email        string
	PasswordHash string
	Secret       string
	TTL          time.Duration
}

// NewAuth hashes the configured admin password once at startup.
func NewAuth(cfg *config.Config) (Auth, error) {
	if cfg.AdminPassword == "" {
		return Auth{}, errors.New("admin password not set")
	}
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return Auth{}, err
	}
	return Auth{
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: hash,
		Secret:       cfg.JWTSecret,
		TTL:          cfg.JWTExpiry,
	}, nil
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != h.auth.Email || !utils.CheckPasswordHash(input.Password, h.auth.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(email, h.auth.Secret, h.auth.TTL)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie(
		"token",
		token,
		int(h.auth.TTL.Seconds()),
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"email": email,
			"role":  "admin",
		},
	})
}

func (h *Handler) Me(c *gin.Context) {
	user := utils.CurrentUser(c)
	if user == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": user,
			"role":  "admin",
		},
	})
}
