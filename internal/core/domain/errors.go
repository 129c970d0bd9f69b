package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Account lifecycle errors
var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrAccountNotActive       = errors.New("account is not active")
	ErrAccountDeleted         = errors.New("account has been deleted")
	ErrAccountNotDeleted      = errors.New("account is not deleted")
	ErrAlreadyActivated       = errors.New("account is already activated")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrCannotDeleteAdmin      = errors.New("cannot delete admin account")
)

// Activation token errors
var (
	ErrActivationTokenInvalid = errors.New("invalid activation token")
	ErrActivationTokenExpired = errors.New("activation token has expired")
)
