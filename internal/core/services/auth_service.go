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
	"investhub/internal/pkg/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivationTokenTTL is the validity window of an activation token
const ActivationTokenTTL = 24 * time.Hour

// AuthService handles registration, activation and login
type AuthService struct {
	accountRepo repositories.AccountRepository
	mailer      Mailer
	codec       *token.Codec
	now         func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(accountRepo repositories.AccountRepository, mailer Mailer, codec *token.Codec) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		mailer:      mailer,
		codec:       codec,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// RegisterInput represents registration input
type RegisterInput struct {
	OrgName  string
	Email    string
	Password string
}

// LoginInput represents login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Token   string                  `json:"token"`
	Account *models.AccountResponse `json:"account"`
}

// Register self-registers a new INVESTOR account. The account starts
// PENDING with a fresh activation token and cannot log in until
// activated.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.AccountResponse, error) {
	exists, err := s.accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	activationToken := uuid.New().String()
	tokenExpiry := s.now().Add(ActivationTokenTTL)

	account := &models.Account{
		OrgName:               input.OrgName,
		Email:                 input.Email,
		Password:              hashedPassword,
		Role:                  string(domain.RoleInvestor),
		IsActive:              false,
		ActivationToken:       &activationToken,
		ActivationTokenExpiry: &tokenExpiry,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.mailer.SendActivationEmail(account.Email, account.OrgName, activationToken)

	log.Printf("✅ Account registered: %s", account.Email)
	return account.ToResponse(), nil
}

// Login authenticates an account and issues a bearer token. Guards run
// in order: existence, activation, deletion, credential match — each
// failing with its own error.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	account, err := s.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, domain.ErrAccountNotActive
	}

	if account.IsDeleted {
		return nil, domain.ErrAccountDeleted
	}

	if !password.Verify(input.Password, account.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	bearer, err := s.codec.Issue(account.ID, account.Email, account.Role, s.now())
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Login successful: %s", account.Email)

	return &LoginResult{
		Token:   bearer,
		Account: account.ToResponse(),
	}, nil
}

// Activate consumes an activation token, moving the account from
// PENDING to ACTIVE. The token is cleared so a second call with the
// same value fails with an invalid-token error.
func (s *AuthService) Activate(ctx context.Context, activationToken string) error {
	account, err := s.accountRepo.GetByActivationToken(ctx, activationToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrActivationTokenInvalid
		}
		return err
	}

	if !account.HasValidActivationToken(s.now()) {
		return domain.ErrActivationTokenExpired
	}

	if account.IsActive {
		return domain.ErrAlreadyActivated
	}

	now := s.now()
	account.IsActive = true
	account.ActivationToken = nil
	account.ActivationTokenExpiry = nil
	account.UpdatedAt = &now

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	log.Printf("✅ Account activated: %s", account.Email)
	return nil
}

// ResendActivation replaces a pending account's activation token with
// a fresh one and re-sends the activation email
func (s *AuthService) ResendActivation(ctx context.Context, email string) error {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	if account.IsActive {
		return domain.ErrAlreadyActivated
	}

	activationToken := uuid.New().String()
	tokenExpiry := s.now().Add(ActivationTokenTTL)
	now := s.now()

	account.ActivationToken = &activationToken
	account.ActivationTokenExpiry = &tokenExpiry
	account.UpdatedAt = &now

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	s.mailer.SendActivationEmail(account.Email, account.OrgName, activationToken)

	log.Printf("✅ Activation email resent: %s", account.Email)
	return nil
}
