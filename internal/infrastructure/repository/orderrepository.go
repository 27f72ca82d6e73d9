package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"farmgate/internal/domain/order"
	"farmgate/internal/infrastructure/persistence/mappers"
	"farmgate/internal/infrastructure/persistence/models"
	"farmgate/internal/shared/db"
	"farmgate/internal/shared/logger"
)

// OrderRepository implements the order repository interface on GORM.
type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(gdb *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepository{
		db:     gdb,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

// Save creates a new order
func (r *OrderRepository) Save(ctx context.Context, entity *order.Order) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map order entity to model", "error", err)
		return fmt.Errorf("failed to map order entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create order in database", "error", err)
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set order ID", "error", err)
		return fmt.Errorf("failed to set order ID: %w", err)
	}

	r.logger.Infow("order created", "id", model.ID, "buyer_id", model.BuyerID, "seller_id", model.SellerID)
	return nil
}

// Update persists the aggregate
func (r *OrderRepository) Update(ctx context.Context, entity *order.Order) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map order entity to model", "id", entity.ID(), "error", err)
		return fmt.Errorf("failed to map order entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"is_delivered":   model.IsDelivered,
			"delivered_at":   model.DeliveredAt,
			"otp_hash":       model.OtpHash,
			"otp_salt":       model.OtpSalt,
			"otp_expires_at": model.OtpExpiresAt,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update order", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	return nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map order model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map order: %w", err)
	}

	return entity, nil
}

// List retrieves a paginated list of orders
func (r *OrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	var orderModels []*models.OrderModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})

	if filter.BuyerID != nil {
		query = query.Where("buyer_id = ?", *filter.BuyerID)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count orders", "error", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&orderModels).Error; err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(orderModels)
	if err != nil {
		r.logger.Errorw("failed to map order models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map orders: %w", err)
	}

	return entities, total, nil
}
