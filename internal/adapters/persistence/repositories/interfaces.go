package repositories

import (
	"context"
	"time"

	"investhub/internal/adapters/persistence/models"
)

// AccountRepository defines the persistence contract consumed by the
// account lifecycle services
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByActivationToken(ctx context.Context, token string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Account, int64, error)
	ClearExpiredActivationTokens(ctx context.Context, now time.Time) (int64, error)
}
