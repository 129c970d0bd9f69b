package handlers

import (
	"errors"
	"strings"

	"investhub/internal/core/domain"
	"investhub/internal/core/services"
	"investhub/internal/pkg/pagination"
	"investhub/internal/pkg/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin account management endpoints
type AdminHandler struct {
	userService *services.UserService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// CreateAccountRequest represents admin account creation request body
type CreateAccountRequest struct {
	OrgName string `json:"org_name"`
	Email   string `json:"email"`
}

// Validate validates the account creation request
func (r CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrgName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// CreateAccount creates an immediately-active investor account
// @Summary Create account
// @Description Create a new investor account with a generated temporary password (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAccountRequest true "Account data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/users [post]
func (h *AdminHandler) CreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	input := &services.CreateByAdminInput{
		OrgName: strings.TrimSpace(req.OrgName),
		Email:   strings.TrimSpace(req.Email),
	}

	result, err := h.userService.CreateByAdmin(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			return response.BadRequest(c, "Email is already registered")
		}
		return response.InternalServerError(c, "Failed to create account")
	}

	return response.Success(c, "Account created successfully. Credentials have been sent to the account's email.", result)
}

// ListAccounts lists all accounts
// @Summary List accounts
// @Description List all accounts with pagination (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListAccounts(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.userService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list accounts")
	}

	return response.Success(c, "Accounts retrieved successfully", fiber.Map{
		"accounts": result.Accounts,
		"meta":     pagination.GetMeta(params, result.Total),
	})
}

// GetAccount gets an account by ID
// @Summary Get account
// @Description Get account information by ID (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetAccount(c *fiber.Ctx) error {
	account, err := h.userService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to get account")
	}

	return response.Success(c, "Account retrieved successfully", account)
}

// DeleteAccount soft-deletes an account
// @Summary Delete account
// @Description Soft-delete an account; admin accounts cannot be deleted (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteAccount(c *fiber.Ctx) error {
	err := h.userService.SoftDelete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return response.NotFound(c, "Account not found")
		case errors.Is(err, domain.ErrCannotDeleteAdmin):
			return response.BadRequest(c, "Cannot delete admin account")
		default:
			return response.InternalServerError(c, "Failed to delete account")
		}
	}

	return response.Success(c, "Account deleted successfully", nil)
}

// RestoreAccount reverses a soft delete
// @Summary Restore account
// @Description Restore a previously deleted account (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/restore [post]
func (h *AdminHandler) RestoreAccount(c *fiber.Ctx) error {
	err := h.userService.Restore(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return response.NotFound(c, "Account not found")
		case errors.Is(err, domain.ErrAccountNotDeleted):
			return response.BadRequest(c, "Account is not deleted")
		default:
			return response.InternalServerError(c, "Failed to restore account")
		}
	}

	return response.Success(c, "Account restored successfully", nil)
}
