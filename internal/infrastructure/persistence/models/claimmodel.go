package models

import (
	"time"

	"gorm.io/gorm"

	"farmgate/internal/shared/constants"
)

// ClaimModel is the database persistence model for rental claims. The
// composite status index backs both the cascade reject on approval and
// the expired-handover sweep.
type ClaimModel struct {
	ID         uint   `gorm:"primarykey"`
	ListingID  uint   `gorm:"not null;index:idx_claims_listing_status,priority:1"`
	ClaimantID uint   `gorm:"not null;index:idx_claims_claimant"`
	OwnerID    uint   `gorm:"not null;index:idx_claims_owner"`
	Message    string `gorm:"type:text"`
	Months     int    `gorm:"not null"`
	Status     string `gorm:"not null;default:pending;size:30;index:idx_claims_listing_status,priority:2"`
	// Handover passcode challenge; only the salted hash is stored.
	OtpHash      string `gorm:"size:64"`
	OtpSalt      string `gorm:"size:32"`
	OtpExpiresAt *time.Time
	HandoverAt   *time.Time
	Version      int `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ClaimModel) TableName() string {
	return constants.TableClaims
}

// BeforeCreate hook for GORM
func (c *ClaimModel) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = "pending"
	}
	if c.Version == 0 {
		c.Version = 1
	}
	return nil
}
