package dto

import (
	"time"

	"farmgate/internal/domain/listing"
)

type ListingDTO struct {
	ID               uint      `json:"id"`
	OwnerID          uint      `json:"owner_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	DescriptionHTML  string    `json:"description_html,omitempty"`
	Location         string    `json:"location"`
	AreaAcres        float64   `json:"area_acres"`
	MonthlyRentCents int64     `json:"monthly_rent_cents"`
	Photos           []string  `json:"photos"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToListingDTO(l *listing.Listing) *ListingDTO {
	return &ListingDTO{
		ID:               l.ID(),
		OwnerID:          l.OwnerID(),
		Title:            l.Title(),
		Description:      l.Description(),
		Location:         l.Location(),
		AreaAcres:        l.AreaAcres(),
		MonthlyRentCents: l.MonthlyRentCents(),
		Photos:           l.Photos(),
		Status:           l.Status().String(),
		CreatedAt:        l.CreatedAt(),
		UpdatedAt:        l.UpdatedAt(),
	}
}

func ToListingDTOs(listings []*listing.Listing) []*ListingDTO {
	dtos := make([]*ListingDTO, 0, len(listings))
	for _, l := range listings {
		dtos = append(dtos, ToListingDTO(l))
	}
	return dtos
}
