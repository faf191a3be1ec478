package dto

import (
	"time"

	"github.com/okware/blog-management-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of any outward representation.
type UserDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	PostCount int64     `json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents a successful login in API responses
type LoginResponse struct {
	Token string `json:"token"`
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		PostCount: user.PostCount,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of User models to UserDTOs
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
