package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"farmgate/internal/shared/constants"
)

// ListingModel is the database persistence model for land listings.
type ListingModel struct {
	ID      uint   `gorm:"primarykey"`
	OwnerID uint   `gorm:"not null;index:idx_listings_owner"`
	Title   string `gorm:"not null;size:200"`
	// Description is owner-authored markdown, stored verbatim.
	Description      string         `gorm:"type:text"`
	Location         string         `gorm:"size:300;index:idx_listings_location"`
	AreaAcres        float64        `gorm:"not null"`
	MonthlyRentCents int64          `gorm:"not null;default:0"`
	Photos           datatypes.JSON `gorm:"type:json"` // photo URLs (JSON array)
	Status           string         `gorm:"not null;default:available;size:30;index:idx_listings_status"`
	Version          int            `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ListingModel) TableName() string {
	return constants.TableListings
}

// BeforeCreate hook for GORM
func (l *ListingModel) BeforeCreate(tx *gorm.DB) error {
	if l.Status == "" {
		l.Status = "available"
	}
	if l.Version == 0 {
		l.Version = 1
	}
	return nil
}
