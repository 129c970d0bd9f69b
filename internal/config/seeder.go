package config

import (
	"fmt"
	"log"

	"investhub/internal/adapters/persistence/models"
	"investhub/internal/core/domain"
	"investhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminAccount(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminAccount ensures one ADMIN account exists. The admin is
// created ACTIVE with no activation token; credentials come from env.
func (s *Seeder) seedAdminAccount() error {
	var count int64
	s.db.Model(&models.Account{}).Where("role = ?", string(domain.RoleAdmin)).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	if s.cfg.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD not set, refusing to seed admin with empty credentials")
	}

	hashedPassword, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Account{
		OrgName:  s.cfg.Admin.OrgName,
		Email:    s.cfg.Admin.Email,
		Password: hashedPassword,
		Role:     string(domain.RoleAdmin),
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin account seeded: %s", admin.Email)
	return nil
}
