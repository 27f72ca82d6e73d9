package mappers

import (
	"fmt"
	"time"

	"farmgate/internal/domain/user"
	vo "farmgate/internal/domain/user/valueobjects"
	"farmgate/internal/infrastructure/persistence/models"
	"farmgate/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	authData := &user.AuthData{
		PasswordHash:       model.PasswordHash,
		EmailVerified:      model.EmailVerified,
		VerificationHash:   model.VerificationHash,
		VerificationSalt:   model.VerificationSalt,
		VerificationExpiry: timeOrZero(model.VerificationExpiresAt),
		ResetHash:          model.ResetHash,
		ResetSalt:          model.ResetSalt,
		ResetExpiry:        timeOrZero(model.ResetExpiresAt),
	}

	entity, err := user.ReconstructUser(
		model.ID,
		email,
		model.Name,
		user.Role(model.Role),
		status,
		authData,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.UserModel{
		ID:            entity.ID(),
		Email:         entity.Email().String(),
		Name:          entity.Name(),
		Role:          string(entity.Role()),
		Status:        string(entity.Status()),
		PasswordHash:  entity.PasswordHash(),
		EmailVerified: entity.EmailVerified(),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}

	if c := entity.VerificationChallenge(); c != nil {
		exp := c.ExpiresAt()
		model.VerificationHash = c.Hash()
		model.VerificationSalt = c.Salt()
		model.VerificationExpiresAt = &exp
	}
	if c := entity.ResetChallenge(); c != nil {
		exp := c.ExpiresAt()
		model.ResetHash = c.Hash()
		model.ResetSalt = c.Salt()
		model.ResetExpiresAt = &exp
	}

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.UserModel) uint { return model.ID })
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
