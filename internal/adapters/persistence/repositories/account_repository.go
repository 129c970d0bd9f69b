package repositories

import (
	"context"
	"time"

	"investhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// Update saves all fields of an existing account
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// GetByID gets an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByEmail gets an account by email (exact match)
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByActivationToken gets an account by its activation token
func (r *accountRepository) GetByActivationToken(ctx context.Context, token string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("activation_token = ?", token).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByEmail checks if an email is already registered
func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// List lists accounts with pagination
func (r *accountRepository) List(ctx context.Context, offset, limit int) ([]*models.Account, int64, error) {
	var accounts []*models.Account
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

// ClearExpiredActivationTokens removes activation tokens whose expiry
// has passed. Accounts stay PENDING; a resend issues a fresh token.
func (r *accountRepository) ClearExpiredActivationTokens(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("activation_token IS NOT NULL AND activation_token_expiry < ?", now).
		Updates(map[string]interface{}{
			"activation_token":        nil,
			"activation_token_expiry": nil,
		})
	return result.RowsAffected, result.Error
}
