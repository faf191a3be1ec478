package repository

import (
	"github.com/okware/blog-management-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by their normalized email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll lists every user
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists all fields of the user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// AdjustPostCount shifts the post counter by delta with one relative UPDATE,
// so concurrent adjustments do not overwrite each other.
func (r *GormUserRepository) AdjustPostCount(userID uint64, delta int64) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("post_count", gorm.Expr("post_count + ?", delta)).Error
}

// RecountPosts recomputes post_count for every user from the posts table.
func (r *GormUserRepository) RecountPosts() error {
	return r.db.Model(&models.User{}).
		Where("1 = 1").
		UpdateColumn("post_count", gorm.Expr(
			"(SELECT COUNT(*) FROM posts WHERE posts.creator_id = users.id)",
		)).Error
}
