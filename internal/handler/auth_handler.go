package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mobilecarebd/off-white/internal/authclient"
	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/service"
)

// AuthHandler implements the auth API: the server side of the contract the
// request gate and the client session store depend on. Failure bodies always
// carry a displayable message field.
type AuthHandler struct {
	authService service.AuthService
	expiry      time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, expiry time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, expiry: expiry}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,e164"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse wraps the user record returned by auth endpoints.
type UserResponse struct {
	User *model.User `json:"user"`
}

// Register godoc
// @Summary Register a new user and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domerr.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domerr.ErrorResponse{Message: err.Error()})
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Name, req.Phone, req.Email, req.Password)
	if err != nil {
		if err == service.ErrUserAlreadyExists {
			return c.JSON(http.StatusConflict, domerr.ErrorResponse{
				Message: err.Error(),
				Code:    "USER_ALREADY_EXISTS",
			})
		}
		return c.JSON(http.StatusInternalServerError, domerr.ErrorResponse{
			Message: "failed to register",
			Code:    "REGISTRATION_FAILED",
		})
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, UserResponse{User: user})
}

// Login godoc
// @Summary Login with phone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domerr.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domerr.ErrorResponse{Message: err.Error()})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, domerr.ErrorResponse{
				Message: err.Error(),
				Code:    "INVALID_CREDENTIALS",
			})
		case domerr.ErrUserInactive:
			return c.JSON(http.StatusForbidden, domerr.ErrorResponse{
				Message: err.Error(),
				Code:    "USER_INACTIVE",
			})
		}
		return c.JSON(http.StatusInternalServerError, domerr.ErrorResponse{
			Message: "failed to login",
			Code:    "LOGIN_FAILED",
		})
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, UserResponse{User: user})
}

// Me godoc
// @Summary Current user for the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	cookie, err := c.Cookie(authclient.TokenCookie)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, domerr.ErrorResponse{
			Message: "not authenticated",
			Code:    "NO_SESSION",
		})
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), cookie.Value)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, domerr.ErrorResponse{
			Message: "invalid or expired session",
			Code:    "INVALID_SESSION",
		})
	}

	return c.JSON(http.StatusOK, UserResponse{User: user})
}

// Logout godoc
// @Summary Revoke the session and clear the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(authclient.TokenCookie); err == nil && cookie.Value != "" {
		// An already-invalid token has nothing to revoke. Anything else
		// leaves the token live until expiry, so it must be visible.
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil && err != service.ErrInvalidSession {
			log.Printf("auth: session revoke failed: %v", err)
		}
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     authclient.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.expiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     authclient.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
