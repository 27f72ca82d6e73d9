package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmgate/internal/domain/claim"
	vo "farmgate/internal/domain/claim/valueobjects"
	"farmgate/internal/infrastructure/persistence/mappers"
	"farmgate/internal/infrastructure/persistence/models"
	"farmgate/internal/shared/biztime"
	"farmgate/internal/shared/db"
	"farmgate/internal/shared/logger"
)

// ClaimRepository implements the claim repository interface on GORM.
type ClaimRepository struct {
	db     *gorm.DB
	mapper mappers.ClaimMapper
	logger logger.Interface
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(gdb *gorm.DB, logger logger.Interface) claim.Repository {
	return &ClaimRepository{
		db:     gdb,
		mapper: mappers.NewClaimMapper(),
		logger: logger,
	}
}

// Save creates a new claim
func (r *ClaimRepository) Save(ctx context.Context, entity *claim.Claim) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map claim entity to model", "error", err)
		return fmt.Errorf("failed to map claim entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create claim in database", "error", err)
		return fmt.Errorf("failed to create claim: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set claim ID", "error", err)
		return fmt.Errorf("failed to set claim ID: %w", err)
	}

	r.logger.Infow("claim created", "id", model.ID, "listing_id", model.ListingID, "claimant_id", model.ClaimantID)
	return nil
}

// Update persists the aggregate with an optimistic version check. The
// domain bumps the version on every mutation, so the row must still hold
// the previous version; anything else means a concurrent writer won.
func (r *ClaimRepository) Update(ctx context.Context, entity *claim.Claim) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map claim entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map claim entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ClaimModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"otp_hash":       model.OtpHash,
			"otp_salt":       model.OtpSalt,
			"otp_expires_at": model.OtpExpiresAt,
			"handover_at":    model.HandoverAt,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update claim", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update claim: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return claim.ErrStaleClaim
	}

	return nil
}

// GetByID retrieves a claim by ID
func (r *ClaimRepository) GetByID(ctx context.Context, id uint) (*claim.Claim, error) {
	var model models.ClaimModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get claim by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	return r.toEntity(&model)
}

// GetByIDForUpdate loads the claim holding a row lock for the rest of
// the surrounding transaction.
func (r *ClaimRepository) GetByIDForUpdate(ctx context.Context, id uint) (*claim.Claim, error) {
	var model models.ClaimModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get claim for update", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	return r.toEntity(&model)
}

// List retrieves a paginated list of claims
func (r *ClaimRepository) List(ctx context.Context, filter claim.Filter) ([]*claim.Claim, int64, error) {
	var claimModels []*models.ClaimModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).Model(&models.ClaimModel{})

	if filter.ListingID != nil {
		query = query.Where("listing_id = ?", *filter.ListingID)
	}
	if filter.ClaimantID != nil {
		query = query.Where("claimant_id = ?", *filter.ClaimantID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count claims", "error", err)
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&claimModels).Error; err != nil {
		r.logger.Errorw("failed to list claims", "error", err)
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	entities, err := r.mapper.ToEntities(claimModels)
	if err != nil {
		r.logger.Errorw("failed to map claim models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map claims: %w", err)
	}

	return entities, total, nil
}

// ApproveExclusively conditionally flips the claim from pending to
// approved and cascade-rejects its pending siblings on the listing. The
// conditional UPDATE is the arbitration point: of two concurrent
// approvals only one finds the row still pending.
func (r *ClaimRepository) ApproveExclusively(ctx context.Context, claimID, listingID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	now := biztime.NowUTC()

	result := tx.Model(&models.ClaimModel{}).
		Where("id = ? AND status = ?", claimID, vo.StatusPending).
		Updates(map[string]interface{}{
			"status":     string(vo.StatusApproved),
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to approve claim", "id", claimID, "error", result.Error)
		return 0, fmt.Errorf("failed to approve claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, claim.ErrNotPending
	}

	siblings := tx.Model(&models.ClaimModel{}).
		Where("listing_id = ? AND status = ? AND id <> ?", listingID, vo.StatusPending, claimID).
		Updates(map[string]interface{}{
			"status":     string(vo.StatusRejected),
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if siblings.Error != nil {
		r.logger.Errorw("failed to reject sibling claims", "listing_id", listingID, "error", siblings.Error)
		return 0, fmt.Errorf("failed to reject sibling claims: %w", siblings.Error)
	}

	return siblings.RowsAffected, nil
}

// HasPendingByClaimant reports whether the claimant already holds a
// pending claim on the listing.
func (r *ClaimRepository) HasPendingByClaimant(ctx context.Context, listingID, claimantID uint) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ClaimModel{}).
		Where("listing_id = ? AND claimant_id = ? AND status = ?", listingID, claimantID, vo.StatusPending).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check pending claims", "listing_id", listingID, "claimant_id", claimantID, "error", err)
		return false, fmt.Errorf("failed to check pending claims: %w", err)
	}

	return count > 0, nil
}

// ListExpiredHandovers returns claims sitting in handover whose passcode
// expired before the given instant. Rows with a missing expiry are
// included; they hold no usable code either.
func (r *ClaimRepository) ListExpiredHandovers(ctx context.Context, before time.Time) ([]*claim.Claim, error) {
	var claimModels []*models.ClaimModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("status = ? AND (otp_expires_at IS NULL OR otp_expires_at < ?)", vo.StatusHandoverInProgress, before).
		Find(&claimModels).Error; err != nil {
		r.logger.Errorw("failed to list expired handovers", "error", err)
		return nil, fmt.Errorf("failed to list expired handovers: %w", err)
	}

	return r.mapper.ToEntities(claimModels)
}

func (r *ClaimRepository) toEntity(model *models.ClaimModel) (*claim.Claim, error) {
	entity, err := r.mapper.ToEntity(model)
	if err != nil {
		r.logger.Errorw("failed to map claim model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map claim: %w", err)
	}
	return entity, nil
}
