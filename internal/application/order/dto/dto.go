package dto

import (
	"time"

	"farmgate/internal/domain/order"
)

type OrderDTO struct {
	ID            uint       `json:"id"`
	BuyerID       uint       `json:"buyer_id"`
	SellerID      uint       `json:"seller_id"`
	Description   string     `json:"description"`
	TotalCents    int64      `json:"total_cents"`
	Status        string     `json:"status"`
	IsDelivered   bool       `json:"is_delivered"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	CodeExpiresAt *time.Time `json:"code_expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	d := &OrderDTO{
		ID:          o.ID(),
		BuyerID:     o.BuyerID(),
		SellerID:    o.SellerID(),
		Description: o.Description(),
		TotalCents:  o.TotalCents(),
		Status:      o.Status().String(),
		IsDelivered: o.IsDelivered(),
		DeliveredAt: o.DeliveredAt(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
	if ch := o.Challenge(); ch != nil {
		exp := ch.ExpiresAt()
		d.CodeExpiresAt = &exp
	}
	return d
}

func ToOrderDTOs(orders []*order.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, ToOrderDTO(o))
	}
	return dtos
}
