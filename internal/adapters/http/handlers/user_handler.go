package handlers

import (
	"errors"

	"investhub/internal/adapters/http/middleware"
	"investhub/internal/core/domain"
	"investhub/internal/core/services"
	"investhub/internal/pkg/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles authenticated user endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents profile update request body
type UpdateProfileRequest struct {
	OrgName     string `json:"org_name"`
	NewPassword string `json:"new_password"`
}

// Validate validates the profile update request. Both fields are
// optional but a new password must meet the minimum length.
func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrgName, validation.Length(0, 100)),
		validation.Field(&r.NewPassword, validation.Length(8, 72)),
	)
}

// Me returns the current account
// @Summary Get current account
// @Description Get the currently authenticated account's information
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	account, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to get account")
	}

	return response.Success(c, "Account information retrieved successfully", account)
}

// UpdateProfile updates the current account's profile
// @Summary Update profile
// @Description Update organization name and/or password of the current account
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	input := &services.UpdateProfileInput{
		OrgName:     req.OrgName,
		NewPassword: req.NewPassword,
	}

	account, err := h.userService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, "Profile updated successfully", account)
}

// ValidateToken confirms the bearer token is valid. The heavy lifting
// happens in the auth middleware; reaching this handler means success.
// @Summary Validate token
// @Description Validate the presented bearer token
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/validate-token [get]
func (h *UserHandler) ValidateToken(c *fiber.Ctx) error {
	return response.Success(c, "Token is valid", nil)
}
