package services

import (
	"context"
	"errors"
	"log"
	"time"

	"investhub/internal/adapters/persistence/models"
	"investhub/internal/adapters/persistence/repositories"
	"investhub/internal/core/domain"
	"investhub/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles profile updates and admin account management
type UserService struct {
	accountRepo repositories.AccountRepository
	mailer      Mailer
	now         func() time.Time
}

// NewUserService creates a new user service
func NewUserService(accountRepo repositories.AccountRepository, mailer Mailer) *UserService {
	return &UserService{
		accountRepo: accountRepo,
		mailer:      mailer,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *UserService) WithClock(now func() time.Time) *UserService {
	s.now = now
	return s
}

// UpdateProfileInput represents update profile input. Nil or empty
// fields are left untouched.
type UpdateProfileInput struct {
	OrgName     string
	NewPassword string
}

// CreateByAdminInput represents admin account creation input
type CreateByAdminInput struct {
	OrgName string
	Email   string
}

// CreateByAdminResult carries the generated temporary credential back
// to the admin caller
type CreateByAdminResult struct {
	Account           *models.AccountResponse `json:"account"`
	TemporaryPassword string                  `json:"temporary_password"`
}

// ListOutput represents a page of accounts
type ListOutput struct {
	Accounts []*models.AccountResponse `json:"accounts"`
	Total    int64                     `json:"total"`
}

// GetByID gets an account by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*models.AccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account.ToResponse(), nil
}

// List lists accounts with pagination
func (s *UserService) List(ctx context.Context, offset, limit int) (*ListOutput, error) {
	accounts, total, err := s.accountRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = account.ToResponse()
	}

	return &ListOutput{
		Accounts: responses,
		Total:    total,
	}, nil
}

// UpdateProfile applies any non-empty fields of the input to the
// account and bumps its update timestamp
func (s *UserService) UpdateProfile(ctx context.Context, id string, input *UpdateProfileInput) (*models.AccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	if input.OrgName != "" {
		account.OrgName = input.OrgName
	}

	if input.NewPassword != "" {
		hashedPassword, err := password.Hash(input.NewPassword)
		if err != nil {
			return nil, err
		}
		account.Password = hashedPassword
	}

	now := s.now()
	account.UpdatedAt = &now

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	log.Printf("✅ Profile updated: %s", account.Email)
	return account.ToResponse(), nil
}

// CreateByAdmin creates an immediately-active INVESTOR account with a
// generated temporary password. No activation token is ever set; the
// credentials are emailed to the account holder.
func (s *UserService) CreateByAdmin(ctx context.Context, input *CreateByAdminInput) (*CreateByAdminResult, error) {
	exists, err := s.accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	temporaryPassword, err := password.GenerateTemporary(password.TemporaryLength)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := password.Hash(temporaryPassword)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		OrgName:  input.OrgName,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     string(domain.RoleInvestor),
		IsActive: true,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.mailer.SendCredentialsEmail(account.Email, account.OrgName, temporaryPassword)

	log.Printf("✅ Account created by admin: %s", account.Email)

	return &CreateByAdminResult{
		Account:           account.ToResponse(),
		TemporaryPassword: temporaryPassword,
	}, nil
}

// SoftDelete marks an account as deleted. Admin accounts can never be
// deleted.
func (s *UserService) SoftDelete(ctx context.Context, id string) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	if account.RoleValue() == domain.RoleAdmin {
		return domain.ErrCannotDeleteAdmin
	}

	now := s.now()
	account.IsDeleted = true
	account.UpdatedAt = &now

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	log.Printf("✅ Account soft-deleted: %s", account.Email)
	return nil
}

// Restore reverses a soft delete
func (s *UserService) Restore(ctx context.Context, id string) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	if !account.IsDeleted {
		return domain.ErrAccountNotDeleted
	}

	now := s.now()
	account.IsDeleted = false
	account.UpdatedAt = &now

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	log.Printf("✅ Account restored: %s", account.Email)
	return nil
}
