package models

import (
	"time"

	"investhub/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents the accounts table
type Account struct {
	ID                    string     `gorm:"type:char(36);primaryKey" json:"id"`
	OrgName               string     `gorm:"size:100;not null" json:"org_name"`
	Email                 string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password              string     `gorm:"size:255;not null" json:"-"`
	Role                  string     `gorm:"size:20;default:'INVESTOR'" json:"role"`
	IsActive              bool       `gorm:"default:false" json:"is_active"`
	ActivationToken       *string    `gorm:"size:36;index" json:"-"`
	ActivationTokenExpiry *time.Time `json:"-"`
	IsDeleted             bool       `gorm:"default:false" json:"is_deleted"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate assigns a UUID primary key on insert
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// AccountResponse DTO
type AccountResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	OrgName   string     `json:"org_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	IsDeleted bool       `json:"is_deleted"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		OrgName:   a.OrgName,
		Role:      a.Role,
		IsActive:  a.IsActive,
		IsDeleted: a.IsDeleted,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// RoleValue returns the account role as a domain role
func (a *Account) RoleValue() domain.Role {
	return domain.Role(a.Role)
}

// HasValidActivationToken reports whether the stored activation token
// is present and unexpired at the given instant
func (a *Account) HasValidActivationToken(now time.Time) bool {
	return a.ActivationToken != nil &&
		a.ActivationTokenExpiry != nil &&
		now.Before(*a.ActivationTokenExpiry)
}

// AutoMigrate creates or updates the schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
	)
}
