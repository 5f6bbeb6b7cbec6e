package api

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/KirkDiggler/tavern/internal/services/auth"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	// Login is a username or an email
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.auth.Register(c.Request.Context(), &auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, AuthResponse{Token: out.Token, ExpiresAt: out.ExpiresAt, User: out.User})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.auth.Login(c.Request.Context(), &auth.LoginInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, AuthResponse{Token: out.Token, ExpiresAt: out.ExpiresAt, User: out.User})
}
