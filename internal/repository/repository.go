package repository

import (
	"github.com/okware/blog-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by their normalized email
	FindByEmail(email string) (*models.User, error)

	// FindAll lists every user
	FindAll() ([]models.User, error)

	// Update persists all fields of the user as a single record update
	Update(user *models.User) error

	// AdjustPostCount shifts the denormalized post counter by delta.
	// It is a single relative UPDATE, issued separately from any post
	// mutation; a crash between the two leaves drift.
	AdjustPostCount(userID uint64, delta int64) error

	// RecountPosts recomputes every user's post counter from the posts
	// table. Operator-triggered repair for accumulated drift.
	RecountPosts() error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID
	FindByID(id uint64) (*models.Post, error)

	// FindAll lists every post, most recently updated first
	FindAll() ([]models.Post, error)

	// FindByCategory lists posts in a category, newest created first
	FindByCategory(category string) ([]models.Post, error)

	// FindByCreator lists an author's posts, newest created first
	FindByCreator(creatorID uint64) ([]models.Post, error)

	// Update persists all fields of the post
	Update(post *models.Post) error

	// Delete permanently removes a post record
	Delete(id uint64) error
}
