package dto

import (
	"time"

	"github.com/okware/blog-management-api/internal/models"
)

// PostDTO represents a post in API responses
type PostDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	CreatorID   uint64    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Category:    post.Category,
		Description: post.Description,
		Thumbnail:   post.Thumbnail,
		CreatorID:   post.CreatorID,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// ToPostDTOs converts a slice of Post models to PostDTOs
func ToPostDTOs(posts []models.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = ToPostDTO(post)
	}
	return dtos
}
