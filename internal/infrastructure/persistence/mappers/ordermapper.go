package mappers

import (
	"fmt"

	"farmgate/internal/domain/order"
	vo "farmgate/internal/domain/order/valueobjects"
	"farmgate/internal/domain/otp"
	"farmgate/internal/infrastructure/persistence/models"
	"farmgate/internal/shared/mapper"
)

// OrderMapper handles the conversion between domain entities and persistence models
type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) (*models.OrderModel, error)
	ToEntities(models []*models.OrderModel) ([]*order.Order, error)
}

type OrderMapperImpl struct{}

// NewOrderMapper creates a new order mapper
func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	challenge := otp.ReconstructChallenge(model.OtpHash, model.OtpSalt, timeOrZero(model.OtpExpiresAt))

	entity, err := order.ReconstructOrder(
		model.ID,
		model.BuyerID,
		model.SellerID,
		model.Description,
		model.TotalCents,
		status,
		model.IsDelivered,
		model.DeliveredAt,
		challenge,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *OrderMapperImpl) ToModel(entity *order.Order) (*models.OrderModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.OrderModel{
		ID:          entity.ID(),
		BuyerID:     entity.BuyerID(),
		SellerID:    entity.SellerID(),
		Description: entity.Description(),
		TotalCents:  entity.TotalCents(),
		Status:      string(entity.Status()),
		IsDelivered: entity.IsDelivered(),
		DeliveredAt: entity.DeliveredAt(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
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
func (m *OrderMapperImpl) ToEntities(modelList []*models.OrderModel) ([]*order.Order, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.OrderModel) uint { return model.ID })
}
