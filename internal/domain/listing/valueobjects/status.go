package valueobjects

import "fmt"

type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusRented    ListingStatus = "rented"
	StatusDelisted  ListingStatus = "delisted"
)

var validListingStatuses = map[ListingStatus]bool{
	StatusAvailable: true,
	StatusRented:    true,
	StatusDelisted:  true,
}

var listingStatusTransitions = map[ListingStatus][]ListingStatus{
	StatusAvailable: {
		StatusRented,
		StatusDelisted,
	},
	StatusRented: {
		StatusAvailable,
	},
}

func (s ListingStatus) String() string {
	return string(s)
}

func (s ListingStatus) IsValid() bool {
	return validListingStatuses[s]
}

func (s ListingStatus) CanTransitionTo(newStatus ListingStatus) bool {
	for _, allowed := range listingStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s ListingStatus) IsAvailable() bool {
	return s == StatusAvailable
}

func (s ListingStatus) IsRented() bool {
	return s == StatusRented
}

func (s ListingStatus) IsDelisted() bool {
	return s == StatusDelisted
}

func NewListingStatus(s string) (ListingStatus, error) {
	ls := ListingStatus(s)
	if !ls.IsValid() {
		return "", fmt.Errorf("invalid listing status: %s", s)
	}
	return ls, nil
}
