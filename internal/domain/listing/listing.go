// Package listing holds the land listing aggregate: the single-owner
// resource that rental claims compete for.
package listing

import (
	"fmt"
	"time"

	vo "farmgate/internal/domain/listing/valueobjects"
	"farmgate/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 10000
	maxLocationLength    = 300
)

type Listing struct {
	id      uint
	ownerID uint
	title   string
	// description is owner-authored markdown, rendered to sanitized HTML
	// at the API layer.
	description string
	location    string
	areaAcres   float64
	// monthlyRentCents avoids floating point money.
	monthlyRentCents int64
	photos           []string
	status           vo.ListingStatus
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewListing(ownerID uint, title, description, location string, areaAcres float64, monthlyRentCents int64, photos []string) (*Listing, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if len(location) > maxLocationLength {
		return nil, fmt.Errorf("location exceeds maximum length of %d characters", maxLocationLength)
	}
	if areaAcres <= 0 {
		return nil, fmt.Errorf("area must be positive")
	}
	if monthlyRentCents < 0 {
		return nil, fmt.Errorf("monthly rent cannot be negative")
	}

	if photos == nil {
		photos = []string{}
	}

	now := biztime.NowUTC()
	return &Listing{
		ownerID:          ownerID,
		title:            title,
		description:      description,
		location:         location,
		areaAcres:        areaAcres,
		monthlyRentCents: monthlyRentCents,
		photos:           photos,
		status:           vo.StatusAvailable,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructListing(
	id, ownerID uint,
	title, description, location string,
	areaAcres float64,
	monthlyRentCents int64,
	photos []string,
	status vo.ListingStatus,
	version int,
	createdAt, updatedAt time.Time,
) (*Listing, error) {
	if id == 0 {
		return nil, fmt.Errorf("listing ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid listing status: %s", status)
	}
	if photos == nil {
		photos = []string{}
	}

	return &Listing{
		id:               id,
		ownerID:          ownerID,
		title:            title,
		description:      description,
		location:         location,
		areaAcres:        areaAcres,
		monthlyRentCents: monthlyRentCents,
		photos:           photos,
		status:           status,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (l *Listing) ID() uint {
	return l.id
}

func (l *Listing) OwnerID() uint {
	return l.ownerID
}

func (l *Listing) Title() string {
	return l.title
}

func (l *Listing) Description() string {
	return l.description
}

func (l *Listing) Location() string {
	return l.location
}

func (l *Listing) AreaAcres() float64 {
	return l.areaAcres
}

func (l *Listing) MonthlyRentCents() int64 {
	return l.monthlyRentCents
}

func (l *Listing) Photos() []string {
	photosCopy := make([]string, len(l.photos))
	copy(photosCopy, l.photos)
	return photosCopy
}

func (l *Listing) Status() vo.ListingStatus {
	return l.status
}

func (l *Listing) Version() int {
	return l.version
}

func (l *Listing) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Listing) UpdatedAt() time.Time {
	return l.updatedAt
}

func (l *Listing) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("listing ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("listing ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Listing) IsOwnedBy(userID uint) bool {
	return l.ownerID == userID
}

// MarkRented transitions the listing to rented once a claim completes its
// handover.
func (l *Listing) MarkRented() error {
	if l.status.IsRented() {
		return nil
	}
	if !l.status.CanTransitionTo(vo.StatusRented) {
		return fmt.Errorf("cannot mark listing with status %s as rented", l.status)
	}

	l.status = vo.StatusRented
	l.touch()
	return nil
}

// Release makes a rented listing available again when a lease ends.
func (l *Listing) Release() error {
	if l.status.IsAvailable() {
		return nil
	}
	if !l.status.CanTransitionTo(vo.StatusAvailable) {
		return fmt.Errorf("cannot release listing with status %s", l.status)
	}

	l.status = vo.StatusAvailable
	l.touch()
	return nil
}

// Delist permanently removes an available listing from the marketplace.
func (l *Listing) Delist() error {
	if l.status.IsDelisted() {
		return nil
	}
	if !l.status.CanTransitionTo(vo.StatusDelisted) {
		return fmt.Errorf("cannot delist listing with status %s", l.status)
	}

	l.status = vo.StatusDelisted
	l.touch()
	return nil
}

func (l *Listing) UpdateDetails(title, description, location string, monthlyRentCents int64) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if len(location) > maxLocationLength {
		return fmt.Errorf("location exceeds maximum length of %d characters", maxLocationLength)
	}
	if monthlyRentCents < 0 {
		return fmt.Errorf("monthly rent cannot be negative")
	}

	l.title = title
	l.description = description
	l.location = location
	l.monthlyRentCents = monthlyRentCents
	l.touch()
	return nil
}

func (l *Listing) touch() {
	l.updatedAt = biztime.NowUTC()
	l.version++
}
