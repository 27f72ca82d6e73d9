package models

import (
	"time"

	"gorm.io/gorm"

	"farmgate/internal/shared/constants"
)

// UserModel is the database persistence model for marketplace accounts.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID            uint   `gorm:"primarykey"`
	Email         string `gorm:"uniqueIndex;not null;size:255"`
	Name          string `gorm:"not null;size:100"`
	Role          string `gorm:"not null;default:user;size:20"`
	Status        string `gorm:"not null;default:pending;size:20"`
	PasswordHash  string `gorm:"size:255"`
	EmailVerified bool   `gorm:"default:false"`
	// Passcode challenges store only the salted hash; the plaintext code
	// is never written anywhere.
	VerificationHash      string `gorm:"size:64"`
	VerificationSalt      string `gorm:"size:32"`
	VerificationExpiresAt *time.Time
	ResetHash             string `gorm:"size:64"`
	ResetSalt             string `gorm:"size:32"`
	ResetExpiresAt        *time.Time
	Version               int `gorm:"not null;default:1"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = "pending"
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}
