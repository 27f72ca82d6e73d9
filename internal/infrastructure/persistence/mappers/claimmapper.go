package mappers

import (
	"fmt"

	"farmgate/internal/domain/claim"
	vo "farmgate/internal/domain/claim/valueobjects"
	"farmgate/internal/domain/otp"
	"farmgate/internal/infrastructure/persistence/models"
	"farmgate/internal/shared/mapper"
)

// ClaimMapper handles the conversion between domain entities and persistence models
type ClaimMapper interface {
	ToEntity(model *models.ClaimModel) (*claim.Claim, error)
	ToModel(entity *claim.Claim) (*models.ClaimModel, error)
	ToEntities(models []*models.ClaimModel) ([]*claim.Claim, error)
}

type ClaimMapperImpl struct{}

// NewClaimMapper creates a new claim mapper
func NewClaimMapper() ClaimMapper {
	return &ClaimMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ClaimMapperImpl) ToEntity(model *models.ClaimModel) (*claim.Claim, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewClaimStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	// ReconstructChallenge tolerates partial rows and yields nil, which the
	// aggregate treats as "no active code".
	challenge := otp.ReconstructChallenge(model.OtpHash, model.OtpSalt, timeOrZero(model.OtpExpiresAt))

	entity, err := claim.ReconstructClaim(
		model.ID,
		model.ListingID,
		model.ClaimantID,
		model.OwnerID,
		model.Message,
		model.Months,
		status,
		challenge,
		model.HandoverAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct claim entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ClaimMapperImpl) ToModel(entity *claim.Claim) (*models.ClaimModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.ClaimModel{
		ID:         entity.ID(),
		ListingID:  entity.ListingID(),
		ClaimantID: entity.ClaimantID(),
		OwnerID:    entity.OwnerID(),
		Message:    entity.Message(),
		Months:     entity.Months(),
		Status:     string(entity.Status()),
		HandoverAt: entity.HandoverAt(),
		Version:    entity.Version(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}

	if c := entity.Challenge(); c != nil {
		exp := c.ExpiresAt()
		model.OtpHash = c.Hash()
		model.OtpSalt = c.Salt()
		model.OtpExpiresAt = &exp
	}

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ClaimMapperImpl) ToEntities(modelList []*models.ClaimModel) ([]*claim.Claim, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ClaimModel) uint { return model.ID })
}
