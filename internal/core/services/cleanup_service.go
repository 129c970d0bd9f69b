package services

import (
	"context"
	"log"
	"time"

	"investhub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CleanupService runs scheduled persistence hygiene jobs
type CleanupService struct {
	accountRepo repositories.AccountRepository
	cron        *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(accountRepo repositories.AccountRepository) *CleanupService {
	return &CleanupService{
		accountRepo: accountRepo,
		cron:        cron.New(),
	}
}

// Start schedules the cleanup jobs. Expired activation tokens are
// purged daily at 02:30; the accounts stay PENDING and a resend issues
// a fresh token.
func (s *CleanupService) Start() {
	if _, err := s.cron.AddFunc("30 2 * * *", s.purgeExpiredActivationTokens); err != nil {
		log.Printf("⚠️ Failed to schedule activation token cleanup: %v", err)
		return
	}

	s.cron.Start()
	log.Println("✅ Cleanup service started (activation token purge at 02:30 daily)")
}

// Stop stops the scheduler
func (s *CleanupService) Stop() {
	s.cron.Stop()
}

func (s *CleanupService) purgeExpiredActivationTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := s.accountRepo.ClearExpiredActivationTokens(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Activation token purge failed: %v", err)
		return
	}

	if purged > 0 {
		log.Printf("✅ Purged %d expired activation tokens", purged)
	}
}
