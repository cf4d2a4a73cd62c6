package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planetary/planetary-api/internal/core/domain"
	"github.com/planetary/planetary-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return echo.NewHTTPError(http.StatusConflict, "That email already exists")
	case err != nil:
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User created successfully"})
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "You entered a bad email or password")
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Message: "Login succeeded", AccessToken: token})
}

// RetrievePassword mails a new password to the given address.
//
// @Summary      Password recovery
// @Tags         auth
// @Produce      json
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  messageResponse
// @Failure      401    {object}  messageResponse
// @Failure      429    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /retrieve_password/{email} [get]
func (h *AuthHandler) RetrievePassword(c echo.Context) error {
	email, err := pathParam(c, "email")
	if err != nil {
		return err
	}

	err = h.authService.RecoverPassword(c.Request().Context(), email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "That email does not exist")
	case errors.Is(err, domain.ErrRecoveryThrottled):
		return echo.NewHTTPError(http.StatusTooManyRequests, "A password was already sent to "+email+", try again later")
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password sent to " + email})
}
