package services

import (
	"context"
	"sync"
	"time"

	"investhub/internal/adapters/persistence/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeAccountRepo is an in-memory AccountRepository for service tests
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*models.Account)}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Email == email {
			clone := *account
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) GetByActivationToken(ctx context.Context, token string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.ActivationToken != nil && *account.ActivationToken == token {
			clone := *account
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeAccountRepo) List(ctx context.Context, offset, limit int) ([]*models.Account, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		clone := *account
		all = append(all, &clone)
	}

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeAccountRepo) ClearExpiredActivationTokens(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int64
	for _, account := range r.accounts {
		if account.ActivationToken != nil && account.ActivationTokenExpiry != nil &&
			account.ActivationTokenExpiry.Before(now) {
			account.ActivationToken = nil
			account.ActivationTokenExpiry = nil
			purged++
		}
	}
	return purged, nil
}

// fakeMailer records notification calls synchronously
type fakeMailer struct {
	mu               sync.Mutex
	activationEmails []sentActivation
	credentialEmails []sentCredentials
}

type sentActivation struct {
	Email string
	Org   string
	Token string
}

type sentCredentials struct {
	Email    string
	Org      string
	Password string
}

func (m *fakeMailer) SendActivationEmail(email, orgName, activationToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activationEmails = append(m.activationEmails, sentActivation{email, orgName, activationToken})
}

func (m *fakeMailer) SendCredentialsEmail(email, orgName, temporaryPassword string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credentialEmails = append(m.credentialEmails, sentCredentials{email, orgName, temporaryPassword})
}

func (m *fakeMailer) SendPasswordResetEmail(email, resetToken string) {}

func (m *fakeMailer) lastActivation() (sentActivation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.activationEmails) == 0 {
		return sentActivation{}, false
	}
	return m.activationEmails[len(m.activationEmails)-1], true
}

func (m *fakeMailer) lastCredentials() (sentCredentials, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.credentialEmails) == 0 {
		return sentCredentials{}, false
	}
	return m.credentialEmails[len(m.credentialEmails)-1], true
}
