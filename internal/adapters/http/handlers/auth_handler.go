package handlers

import (
	"errors"
	"strings"

	"investhub/internal/core/domain"
	"investhub/internal/core/services"
	"investhub/internal/pkg/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	OrgName  string `json:"org_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the registration request
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrgName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the login request
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// Register handles account self-registration
// @Summary Register new account
// @Description Register a new investor account; an activation email is sent
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	input := &services.RegisterInput{
		OrgName:  strings.TrimSpace(req.OrgName),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	account, err := h.authService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			return response.BadRequest(c, "Email is already registered")
		}
		return response.InternalServerError(c, "Failed to register account")
	}

	return response.Created(c, "Account registered successfully. Please check your email to activate your account.", account)
}

// Login handles account login
// @Summary Login
// @Description Authenticate an account and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return response.NotFound(c, "Account not found with email: "+input.Email)
		case errors.Is(err, domain.ErrAccountNotActive):
			return response.Unauthorized(c, "Account is not active. Please check your email to activate your account.")
		case errors.Is(err, domain.ErrAccountDeleted):
			return response.Unauthorized(c, "Account has been deleted")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, "Login successful", result)
}

// Activate handles account activation via the emailed token
// @Summary Activate account
// @Description Activate an account using its activation token
// @Tags Auth
// @Produce json
// @Param token query string true "Activation token"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/activate [get]
func (h *AuthHandler) Activate(c *fiber.Ctx) error {
	activationToken := c.Query("token")
	if activationToken == "" {
		return response.BadRequest(c, "Activation token is required")
	}

	if err := h.authService.Activate(c.Context(), activationToken); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivationTokenInvalid):
			return response.BadRequest(c, "Invalid activation token")
		case errors.Is(err, domain.ErrActivationTokenExpired):
			return response.BadRequest(c, "Activation token has expired")
		case errors.Is(err, domain.ErrAlreadyActivated):
			return response.BadRequest(c, "Account is already activated")
		default:
			return response.InternalServerError(c, "Failed to activate account")
		}
	}

	return response.Success(c, "Account activated successfully. You can now login.", nil)
}

// ResendActivation handles re-issuing the activation email
// @Summary Resend activation email
// @Description Issue a fresh activation token and re-send the email
// @Tags Auth
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/resend-activation [post]
func (h *AuthHandler) ResendActivation(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return response.BadRequest(c, "Email is required")
	}

	if err := h.authService.ResendActivation(c.Context(), email); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return response.NotFound(c, "Account not found with email: "+email)
		case errors.Is(err, domain.ErrAlreadyActivated):
			return response.BadRequest(c, "Account is already activated")
		default:
			return response.InternalServerError(c, "Failed to resend activation email")
		}
	}

	return response.Success(c, "Activation email has been resent. Please check your email.", nil)
}
