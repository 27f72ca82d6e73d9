package valueobjects

import "fmt"

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var validOrderStatuses = map[OrderStatus]bool{
	StatusPlaced:    true,
	StatusDelivered: true,
	StatusCancelled: true,
}

var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	StatusPlaced: {
		StatusDelivered,
		StatusCancelled,
	},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsPlaced() bool {
	return s == StatusPlaced
}

func (s OrderStatus) IsDelivered() bool {
	return s == StatusDelivered
}

func (s OrderStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func NewOrderStatus(s string) (OrderStatus, error) {
	os := OrderStatus(s)
	if !os.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return os, nil
}
