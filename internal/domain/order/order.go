// Package order holds the produce order aggregate. Delivery is confirmed
// with the same one-time passcode primitive as land handovers, minus the
// arbitration layer: an order has no competing claimants.
package order

import (
	"errors"
	"fmt"
	"time"

	vo "farmgate/internal/domain/order/valueobjects"
	"farmgate/internal/domain/otp"
	"farmgate/internal/shared/biztime"
)

// ErrInvalidTransition is returned when an order operation is attempted
// from a state that does not permit it.
var ErrInvalidTransition = errors.New("invalid order status transition")

type Order struct {
	id          uint
	buyerID     uint
	sellerID    uint
	description string
	totalCents  int64
	status      vo.OrderStatus
	isDelivered bool
	deliveredAt *time.Time
	challenge   *otp.Challenge
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOrder(buyerID, sellerID uint, description string, totalCents int64) (*Order, error) {
	if buyerID == 0 {
		return nil, fmt.Errorf("buyer ID is required")
	}
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID is required")
	}
	if buyerID == sellerID {
		return nil, fmt.Errorf("buyer and seller cannot be the same user")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if totalCents <= 0 {
		return nil, fmt.Errorf("order total must be positive")
	}

	now := biztime.NowUTC()
	return &Order{
		buyerID:     buyerID,
		sellerID:    sellerID,
		description: description,
		totalCents:  totalCents,
		status:      vo.StatusPlaced,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructOrder(
	id, buyerID, sellerID uint,
	description string,
	totalCents int64,
	status vo.OrderStatus,
	isDelivered bool,
	deliveredAt *time.Time,
	challenge *otp.Challenge,
	version int,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	return &Order{
		id:          id,
		buyerID:     buyerID,
		sellerID:    sellerID,
		description: description,
		totalCents:  totalCents,
		status:      status,
		isDelivered: isDelivered,
		deliveredAt: deliveredAt,
		challenge:   challenge,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) BuyerID() uint {
	return o.buyerID
}

func (o *Order) SellerID() uint {
	return o.sellerID
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) TotalCents() int64 {
	return o.totalCents
}

func (o *Order) Status() vo.OrderStatus {
	return o.status
}

func (o *Order) IsDelivered() bool {
	return o.isDelivered
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) Challenge() *otp.Challenge {
	return o.challenge
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// BeginDeliveryConfirmation attaches a delivery passcode challenge. Only a
// placed, undelivered order accepts one; re-issuing overwrites the
// outstanding code.
func (o *Order) BeginDeliveryConfirmation(challenge *otp.Challenge) error {
	if challenge == nil {
		return fmt.Errorf("delivery challenge is required")
	}
	if challenge.Expired(biztime.NowUTC()) {
		return fmt.Errorf("delivery challenge is already expired")
	}
	if !o.status.IsPlaced() {
		return fmt.Errorf("%w: cannot confirm delivery for order with status %s", ErrInvalidTransition, o.status)
	}

	o.challenge = challenge
	o.touch()
	return nil
}

// ConfirmDelivery verifies the buyer's passcode and marks the order
// delivered. On verification failure the order is left untouched.
func (o *Order) ConfirmDelivery(code string) error {
	if !o.status.CanTransitionTo(vo.StatusDelivered) {
		return fmt.Errorf("%w: cannot deliver order with status %s", ErrInvalidTransition, o.status)
	}

	if err := o.challenge.Verify(code); err != nil {
		return err
	}

	now := biztime.NowUTC()
	o.status = vo.StatusDelivered
	o.isDelivered = true
	o.deliveredAt = &now
	o.challenge = nil
	o.touch()
	return nil
}

// Cancel cancels a placed order.
func (o *Order) Cancel() error {
	if o.status.IsCancelled() {
		return nil
	}
	if !o.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("%w: cannot cancel order with status %s", ErrInvalidTransition, o.status)
	}

	o.status = vo.StatusCancelled
	o.challenge = nil
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = biztime.NowUTC()
	o.version++
}
