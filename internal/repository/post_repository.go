package repository

import (
	"github.com/okware/blog-management-api/internal/models"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll lists every post, most recently updated first
func (r *GormPostRepository) FindAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("updated_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByCategory lists posts in a category, newest created first
func (r *GormPostRepository) FindByCategory(category string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("category = ?", category).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByCreator lists an author's posts, newest created first
func (r *GormPostRepository) FindByCreator(creatorID uint64) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update persists all fields of the post
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete permanently removes a post record. Posts have no soft-delete
// column, so this is a hard DELETE.
func (r *GormPostRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Post{}, id).Error
}
