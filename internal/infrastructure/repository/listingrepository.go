package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"farmgate/internal/domain/listing"
	"farmgate/internal/infrastructure/persistence/mappers"
	"farmgate/internal/infrastructure/persistence/models"
	"farmgate/internal/shared/db"
	"farmgate/internal/shared/logger"
)

// ListingRepository implements the listing repository interface on GORM.
type ListingRepository struct {
	db     *gorm.DB
	mapper mappers.ListingMapper
	logger logger.Interface
}

// NewListingRepository creates a new listing repository
func NewListingRepository(gdb *gorm.DB, logger logger.Interface) listing.Repository {
	return &ListingRepository{
		db:     gdb,
		mapper: mappers.NewListingMapper(),
		logger: logger,
	}
}

// Save creates a new listing
func (r *ListingRepository) Save(ctx context.Context, entity *listing.Listing) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map listing entity to model", "error", err)
		return fmt.Errorf("failed to map listing entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create listing in database", "error", err)
		return fmt.Errorf("failed to create listing: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set listing ID", "error", err)
		return fmt.Errorf("failed to set listing ID: %w", err)
	}

	r.logger.Infow("listing created", "id", model.ID, "owner_id", model.OwnerID)
	return nil
}

// Update persists the aggregate. Listing writes ride inside the same
// transactions as claim updates, so a plain update suffices here.
func (r *ListingRepository) Update(ctx context.Context, entity *listing.Listing) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map listing entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map listing entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ListingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":              model.Title,
			"description":        model.Description,
			"location":           model.Location,
			"area_acres":         model.AreaAcres,
			"monthly_rent_cents": model.MonthlyRentCents,
			"photos":             model.Photos,
			"status":             model.Status,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update listing", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update listing: %w", result.Error)
	}

	return nil
}

// GetByID retrieves a listing by ID
func (r *ListingRepository) GetByID(ctx context.Context, id uint) (*listing.Listing, error) {
	var model models.ListingModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get listing by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map listing model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map listing: %w", err)
	}

	return entity, nil
}

// List retrieves a paginated list of listings
func (r *ListingRepository) List(ctx context.Context, filter listing.Filter) ([]*listing.Listing, int64, error) {
	var listingModels []*models.ListingModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).Model(&models.ListingModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Location != nil {
		query = query.Where("location LIKE ?", "%"+*filter.Location+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count listings", "error", err)
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&listingModels).Error; err != nil {
		r.logger.Errorw("failed to list listings", "error", err)
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}

	entities, err := r.mapper.ToEntities(listingModels)
	if err != nil {
		r.logger.Errorw("failed to map listing models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map listings: %w", err)
	}

	return entities, total, nil
}
