package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/api/metrics"
	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/ports"
)

const (
	msgRegistered     = "Registration successful! Please login."
	msgUsernameTaken  = "Username already exists."
	msgLoggedIn       = "Logged in successfully!"
	msgBadCredentials = "Invalid credentials."
	msgLoggedOut      = "You have been logged out."
	msgPasswordLong   = "Password is too long."
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    Sessions
}

func NewAuthHandler(authService ports.AuthService, sessions Sessions) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// RegisterForm renders the registration page.
//
// @Summary      Registration page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  page
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	p, err := newPage(c, h.sessions, "register")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Register creates a student account and sends the visitor to the login page.
//
// @Summary      Register a new student
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Failure      400  {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return redirectWithFlash(c, h.sessions, "/register", err.Error())
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return redirectWithFlash(c, h.sessions, "/register", msgUsernameTaken)
	case errors.Is(err, domain.ErrPasswordTooLong):
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return redirectWithFlash(c, h.sessions, "/register", msgPasswordLong)
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return redirectWithFlash(c, h.sessions, "/register", "username and password are required")
	case err != nil:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return redirectWithFlash(c, h.sessions, "/login", msgRegistered)
}

// LoginForm renders the login page.
//
// @Summary      Login page
// @Tags         auth
// @Produce      json
// @Success      200  {object}  page
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	p, err := newPage(c, h.sessions, "login")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Login authenticates the visitor and stores the identity in the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Failure      400  {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return redirectWithFlash(c, h.sessions, "/login", msgBadCredentials)
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrInvalidInput) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return redirectWithFlash(c, h.sessions, "/login", msgBadCredentials)
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	if err := h.sessions.SignIn(c, user); err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return redirectWithFlash(c, h.sessions, "/", msgLoggedIn)
}

// Logout clears the session unconditionally.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.SignOut(c); err != nil {
		return err
	}
	return redirectWithFlash(c, h.sessions, "/login", msgLoggedOut)
}
