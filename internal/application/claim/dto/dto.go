package dto

import (
	"time"

	"farmgate/internal/domain/claim"
)

type ClaimDTO struct {
	ID            uint       `json:"id"`
	ListingID     uint       `json:"listing_id"`
	ClaimantID    uint       `json:"claimant_id"`
	OwnerID       uint       `json:"owner_id"`
	Message       string     `json:"message,omitempty"`
	Months        int        `json:"months"`
	Status        string     `json:"status"`
	HandoverAt    *time.Time `json:"handover_at,omitempty"`
	CodeExpiresAt *time.Time `json:"code_expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToClaimDTO converts a claim aggregate to its API representation. The
// passcode hash never leaves the domain; only the expiry is exposed so
// clients can show a countdown.
func ToClaimDTO(c *claim.Claim) *ClaimDTO {
	d := &ClaimDTO{
		ID:         c.ID(),
		ListingID:  c.ListingID(),
		ClaimantID: c.ClaimantID(),
		OwnerID:    c.OwnerID(),
		Message:    c.Message(),
		Months:     c.Months(),
		Status:     c.Status().String(),
		HandoverAt: c.HandoverAt(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
	if ch := c.Challenge(); ch != nil {
		exp := ch.ExpiresAt()
		d.CodeExpiresAt = &exp
	}
	return d
}

func ToClaimDTOs(claims []*claim.Claim) []*ClaimDTO {
	dtos := make([]*ClaimDTO, 0, len(claims))
	for _, c := range claims {
		dtos = append(dtos, ToClaimDTO(c))
	}
	return dtos
}
