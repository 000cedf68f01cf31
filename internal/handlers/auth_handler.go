package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/auth"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	"github.com/BruksfildServices01/barberia-reservas/internal/usecase/account"
)

type Accounts interface {
	Register(ctx context.Context, in account.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*account.LoginResult, error)
	Logout(ctx context.Context, p auth.Principal) error
}

type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	accounts Accounts
	cookie   CookieOptions
	log      *slog.Logger
}

func NewAuthHandler(accounts Accounts, cookie CookieOptions, log *slog.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, cookie: cookie, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email           string `json:"email" form:"email" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" form:"first_name" binding:"required"`
	LastName        string `json:"last_name" form:"last_name"`
	Phone           string `json:"phone" form:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), account.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, res.Token, maxAge, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"user":       res.User,
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.accounts.Logout(c.Request.Context(), p); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
