package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"farmgate/internal/domain/listing"
	vo "farmgate/internal/domain/listing/valueobjects"
	"farmgate/internal/infrastructure/persistence/models"
	"farmgate/internal/shared/mapper"
)

// ListingMapper handles the conversion between domain entities and persistence models
type ListingMapper interface {
	ToEntity(model *models.ListingModel) (*listing.Listing, error)
	ToModel(entity *listing.Listing) (*models.ListingModel, error)
	ToEntities(models []*models.ListingModel) ([]*listing.Listing, error)
}

type ListingMapperImpl struct{}

// NewListingMapper creates a new listing mapper
func NewListingMapper() ListingMapper {
	return &ListingMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ListingMapperImpl) ToEntity(model *models.ListingModel) (*listing.Listing, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewListingStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	var photos []string
	if len(model.Photos) > 0 {
		if err := json.Unmarshal(model.Photos, &photos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal photos: %w", err)
		}
	}

	entity, err := listing.ReconstructListing(
		model.ID,
		model.OwnerID,
		model.Title,
		model.Description,
		model.Location,
		model.AreaAcres,
		model.MonthlyRentCents,
		photos,
		status,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct listing entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ListingMapperImpl) ToModel(entity *listing.Listing) (*models.ListingModel, error) {
	if entity == nil {
		return nil, nil
	}

	photos, err := json.Marshal(entity.Photos())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal photos: %w", err)
	}

	return &models.ListingModel{
		ID:               entity.ID(),
		OwnerID:          entity.OwnerID(),
		Title:            entity.Title(),
		Description:      entity.Description(),
		Location:         entity.Location(),
		AreaAcres:        entity.AreaAcres(),
		MonthlyRentCents: entity.MonthlyRentCents(),
		Photos:           datatypes.JSON(photos),
		Status:           string(entity.Status()),
		Version:          entity.Version(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ListingMapperImpl) ToEntities(modelList []*models.ListingModel) ([]*listing.Listing, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ListingModel) uint { return model.ID })
}
