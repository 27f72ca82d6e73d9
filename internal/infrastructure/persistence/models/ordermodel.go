package models

import (
	"time"

	"gorm.io/gorm"

	"farmgate/internal/shared/constants"
)

// OrderModel is the database persistence model for produce orders.
type OrderModel struct {
	ID          uint   `gorm:"primarykey"`
	BuyerID     uint   `gorm:"not null;index:idx_orders_buyer"`
	SellerID    uint   `gorm:"not null;index:idx_orders_seller"`
	Description string `gorm:"type:text;not null"`
	TotalCents  int64  `gorm:"not null"`
	Status      string `gorm:"not null;default:placed;size:30;index:idx_orders_status"`
	IsDelivered bool   `gorm:"default:false"`
	DeliveredAt *time.Time
	// Delivery passcode challenge; only the salted hash is stored.
	OtpHash      string `gorm:"size:64"`
	OtpSalt      string `gorm:"size:32"`
	OtpExpiresAt *time.Time
	Version      int `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}

// BeforeCreate hook for GORM
func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = "placed"
	}
	if o.Version == 0 {
		o.Version = 1
	}
	return nil
}
