package dto

import (
	"time"

	"farmgate/internal/domain/user"
)

type UserDTO struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:            u.ID(),
		Email:         u.Email().String(),
		Name:          u.Name(),
		Role:          string(u.Role()),
		Status:        u.Status().String(),
		EmailVerified: u.EmailVerified(),
		CreatedAt:     u.CreatedAt(),
	}
}
