package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okware/blog-management-api/internal/dto"
	apierrors "github.com/okware/blog-management-api/internal/errors"
	"github.com/okware/blog-management-api/internal/middleware"
	"github.com/okware/blog-management-api/internal/services"
	"github.com/okware/blog-management-api/internal/storage"
	"github.com/sirupsen/logrus"
)

// PostHandler coordinates post HTTP handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost creates a new post from a multipart form with a mandatory
// thumbnail.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	thumbnail, thumbnailName, err := readFormFile(c, "thumbnail")
	if err != nil && !errors.Is(err, errNoFile) {
		apierrors.BadRequest(c, "Invalid upload")
		return
	}

	post, err := h.postService.CreatePost(services.CreatePostInput{
		CreatorID:     userID,
		Title:         c.PostForm("title"),
		Category:      c.PostForm("category"),
		Description:   c.PostForm("description"),
		Thumbnail:     thumbnail,
		ThumbnailName: thumbnailName,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostDTO(*post))
}

// ListPosts returns every post, most recently updated first.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts()
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTOs(posts))
}

// GetPost returns a single post by ID.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// ListPostsByCategory returns posts in a category, newest created first.
func (h *PostHandler) ListPostsByCategory(c *gin.Context) {
	posts, err := h.postService.ListPostsByCategory(c.Param("category"))
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTOs(posts))
}

// ListPostsByAuthor returns an author's posts, newest created first.
func (h *PostHandler) ListPostsByAuthor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	posts, err := h.postService.ListPostsByAuthor(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTOs(posts))
}

// UpdatePost edits a post owned by the authenticated user. The thumbnail
// form field is optional; when present it replaces the stored asset.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid post ID")
		return
	}

	thumbnail, thumbnailName, err := readFormFile(c, "thumbnail")
	if err != nil && !errors.Is(err, errNoFile) {
		apierrors.BadRequest(c, "Invalid upload")
		return
	}

	post, err := h.postService.EditPost(userID, postID, services.EditPostInput{
		Title:         c.PostForm("title"),
		Category:      c.PostForm("category"),
		Description:   c.PostForm("description"),
		Thumbnail:     thumbnail,
		ThumbnailName: thumbnailName,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// DeletePost removes a post owned by the authenticated user.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.postService.DeletePost(userID, postID); err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted successfully",
	})
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrThumbnailRequired),
		errors.Is(err, services.ErrDescriptionTooShort),
		errors.Is(err, storage.ErrTooLarge):
		apierrors.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotPostCreator):
		apierrors.Forbidden(c, err.Error())
	default:
		logrus.WithError(err).Error("unhandled post handler error")
		apierrors.InternalError(c, "")
	}
}
