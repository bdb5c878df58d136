package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/auth"
	"example.com/budget-tracker/backend/internal/mail"
	"example.com/budget-tracker/backend/internal/repository"
)

type AuthHandler struct {
	Users        *repository.UserRepository
	TokenManager *auth.TokenManager
	Mailer       *mail.Mailer
	BaseURL      string
}

// NewAuthHandler создает обработчик регистрации.
func NewAuthHandler(users *repository.UserRepository, manager *auth.TokenManager, mailer *mail.Mailer, baseURL string) *AuthHandler {
	return &AuthHandler{
		Users:        users,
		TokenManager: manager,
		Mailer:       mailer,
		BaseURL:      strings.TrimRight(baseURL, "/"),
	}
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignupResponse struct {
	Message   string    `json:"message"`
	UserID    uuid.UUID `json:"user_id"`
	EmailSent bool      `json:"email_sent"`
}

// Signup регистрирует пользователя и отправляет приветственное письмо.
// Письмо — побочный эффект best-effort: его сбой логируется и виден
// в поле email_sent, но регистрацию не отменяет.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required fields")
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if username == "" || email == "" || password == "" {
		return badRequest(c, "missing required fields")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return serverError(c)
	}

	user, err := h.Users.Create(c.Request().Context(), username, email, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "username or email already exists")
		}
		return serverError(c)
	}

	emailSent := h.sendWelcome(c, user.ID, user.Email, user.Username)

	message := "User registered successfully and welcome email sent"
	if !emailSent {
		message = "User registered successfully, but welcome email could not be sent"
	}

	return c.JSON(http.StatusCreated, SignupResponse{
		Message:   message,
		UserID:    user.ID,
		EmailSent: emailSent,
	})
}

// Verify подтверждает email пользователя по токену из письма.
func (h *AuthHandler) Verify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return badRequest(c, "token is required")
	}

	userID, err := h.TokenManager.ParseVerificationToken(token)
	if err != nil {
		return badRequest(c, "invalid or expired token")
	}

	if err := h.Users.MarkVerified(c.Request().Context(), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "email verified"})
}

func (h *AuthHandler) sendWelcome(c echo.Context, userID uuid.UUID, email, username string) bool {
	if h.Mailer == nil || !h.Mailer.Enabled() {
		return false
	}

	token, err := h.TokenManager.NewVerificationToken(userID)
	if err != nil {
		slog.Error("failed to issue verification token", slog.String("error", err.Error()))
		return false
	}

	verifyURL := h.BaseURL + "/api/v1/auth/verify?token=" + url.QueryEscape(token)
	if err := h.Mailer.SendWelcome(c.Request().Context(), email, username, verifyURL); err != nil {
		slog.Error("failed to send welcome email",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return false
	}

	return true
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func accountIDFromPath(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("accountId"))
}
