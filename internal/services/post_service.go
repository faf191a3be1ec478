package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okware/blog-management-api/internal/constants"
	"github.com/okware/blog-management-api/internal/models"
	"github.com/okware/blog-management-api/internal/repository"
	"github.com/okware/blog-management-api/internal/storage"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrNotPostCreator      = errors.New("only the post creator can perform this action")
	ErrThumbnailRequired   = errors.New("thumbnail is required")
	ErrDescriptionTooShort = errors.New("description is too short")
)

// PostService coordinates post mutations across three independent stores:
// the post record, its thumbnail asset, and the author's denormalized post
// counter. No transaction spans them; each operation fixes its own order
// and its own policy for partial failure.
type PostService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	assetStore storage.AssetStore
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, assetStore storage.AssetStore) *PostService {
	return &PostService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		assetStore: assetStore,
	}
}

// CreatePostInput represents input for creating a post
type CreatePostInput struct {
	CreatorID     uint64
	Title         string
	Category      string
	Description   string
	Thumbnail     []byte
	ThumbnailName string
}

// CreatePost stores the thumbnail, inserts the post, then increments the
// author's post counter. If the insert fails the stored asset is orphaned;
// if the counter update fails the post stands and the counter drifts. Both
// are logged, neither is rolled back.
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(input.Title, input.Category, input.Description); err != nil {
		return nil, err
	}
	if len(input.Thumbnail) == 0 {
		return nil, ErrThumbnailRequired
	}

	filename, err := s.assetStore.Store(input.Thumbnail, input.ThumbnailName, constants.MaxThumbnailBytes)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Thumbnail:   filename,
		CreatorID:   input.CreatorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		logrus.WithField("thumbnail", filename).
			Warn("post insert failed after thumbnail was stored, asset is orphaned")
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if err := s.userRepo.AdjustPostCount(input.CreatorID, 1); err != nil {
		logrus.WithError(err).WithField("user_id", input.CreatorID).
			Warn("failed to increment post count, counter has drifted")
	}

	return post, nil
}

// ListPosts returns every post, most recently updated first.
func (s *PostService) ListPosts() ([]models.Post, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a post by ID.
func (s *PostService) GetPost(id uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// ListPostsByCategory returns posts in a category, newest created first.
func (s *PostService) ListPostsByCategory(category string) ([]models.Post, error) {
	posts, err := s.postRepo.FindByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by category: %w", err)
	}
	return posts, nil
}

// ListPostsByAuthor returns an author's posts, newest created first.
func (s *PostService) ListPostsByAuthor(creatorID uint64) ([]models.Post, error) {
	posts, err := s.postRepo.FindByCreator(creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return posts, nil
}

// EditPostInput represents input for editing a post. Thumbnail is optional;
// when present it replaces the stored asset.
type EditPostInput struct {
	Title         string
	Category      string
	Description   string
	Thumbnail     []byte
	ThumbnailName string
}

// EditPost updates a post owned by the requester. When a new thumbnail is
// supplied the old asset's removal is fail-open: a failed delete is logged
// and the new asset and record update proceed anyway. This intentionally
// differs from DeletePost's fail-closed rule.
func (s *PostService) EditPost(requesterID, postID uint64, input EditPostInput) (*models.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	if post.CreatorID != requesterID {
		return nil, ErrNotPostCreator
	}

	if err := validatePostFields(input.Title, input.Category, input.Description); err != nil {
		return nil, err
	}

	if len(input.Thumbnail) > 0 {
		if err := s.assetStore.Delete(post.Thumbnail); err != nil {
			logrus.WithError(err).WithField("thumbnail", post.Thumbnail).
				Warn("failed to remove replaced thumbnail, file is stranded")
		}

		filename, err := s.assetStore.Store(input.Thumbnail, input.ThumbnailName, constants.MaxThumbnailBytes)
		if err != nil {
			return nil, err
		}
		post.Thumbnail = filename
	}

	post.Title = input.Title
	post.Category = input.Category
	post.Description = input.Description

	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeletePost removes a post owned by the requester. Fail-closed: the
// thumbnail asset is deleted first, and if that fails the whole operation
// aborts with post and counter untouched. Only after the asset is gone are
// the record deleted and the author's counter decremented.
func (s *PostService) DeletePost(requesterID, postID uint64) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to find post: %w", err)
	}

	if post.CreatorID != requesterID {
		return ErrNotPostCreator
	}

	if err := s.assetStore.Delete(post.Thumbnail); err != nil {
		return fmt.Errorf("failed to delete thumbnail: %w", err)
	}

	if err := s.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := s.userRepo.AdjustPostCount(post.CreatorID, -1); err != nil {
		logrus.WithError(err).WithField("user_id", post.CreatorID).
			Warn("failed to decrement post count, counter has drifted")
	}

	return nil
}

// validatePostFields applies the shared create/edit rules: title and
// category present, description long enough to hold actual text under the
// editor's markup envelope.
func validatePostFields(title, category, description string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(category) == "" || description == "" {
		return ErrMissingFields
	}
	if len(description) < constants.MinDescriptionLength {
		return ErrDescriptionTooShort
	}
	return nil
}
