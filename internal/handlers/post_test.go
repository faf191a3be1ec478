package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/okware/blog-management-api/internal/dto"
	"github.com/okware/blog-management-api/internal/middleware"
	"github.com/okware/blog-management-api/internal/models"
	"github.com/okware/blog-management-api/internal/repository"
	"github.com/okware/blog-management-api/internal/services"
	"github.com/okware/blog-management-api/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type postHandlerTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	userRepo    repository.UserRepository
	authService *services.AuthService
	postService *services.PostService
}

func setupPostTestEnv(t *testing.T) postHandlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	assetStore, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	authService := services.NewAuthService(userRepo, assetStore, testJWTSecret)
	postService := services.NewPostService(postRepo, userRepo, assetStore)

	userHandler := NewUserHandler(authService)
	postHandler := NewPostHandler(postService)

	requireAuth := middleware.RequireAuth(testJWTSecret)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", userHandler.Register)
	api.POST("/login", userHandler.Login)
	posts := api.Group("/posts")
	posts.GET("", postHandler.ListPosts)
	posts.POST("", requireAuth, postHandler.CreatePost)
	posts.GET("/:id", postHandler.GetPost)
	posts.GET("/categories/:category", postHandler.ListPostsByCategory)
	posts.PATCH("/:id", requireAuth, postHandler.UpdatePost)
	posts.DELETE("/:id", requireAuth, postHandler.DeletePost)

	return postHandlerTestEnv{
		db:          db,
		router:      r,
		userRepo:    userRepo,
		authService: authService,
		postService: postService,
	}
}

// signup registers an account through the service layer and returns a live
// bearer token plus the user's ID.
func (env postHandlerTestEnv) signup(t *testing.T, name, email string) (string, uint64) {
	t.Helper()

	_, err := env.authService.Register(services.RegisterInput{
		Name:            name,
		Email:           email,
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	})
	require.NoError(t, err)

	result, err := env.authService.Login(services.LoginInput{Email: email, Password: "supersecret"})
	require.NoError(t, err)
	return result.Token, result.ID
}

func postForm(t *testing.T, fields map[string]string, thumbnail []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if thumbnail != nil {
		part, err := writer.CreateFormFile("thumbnail", "cover.png")
		require.NoError(t, err)
		_, err = part.Write(thumbnail)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func validPostFields() map[string]string {
	return map[string]string{
		"title":       "A walk through the city",
		"category":    "travel",
		"description": "<p>More than twelve characters of content.</p>",
	}
}

func TestPostHandler_CreatePost(t *testing.T) {
	env := setupPostTestEnv(t)
	token, userID := env.signup(t, "Alice Writer", "alice@example.com")

	body, contentType := postForm(t, validPostFields(), []byte("thumbnail bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "A walk through the city", created.Title)
	require.Equal(t, userID, created.CreatorID)
	require.NotEmpty(t, created.Thumbnail)

	author, err := env.userRepo.FindByID(userID)
	require.NoError(t, err)
	require.Equal(t, int64(1), author.PostCount)
}

func TestPostHandler_CreatePost_Unauthenticated(t *testing.T) {
	env := setupPostTestEnv(t)

	body, contentType := postForm(t, validPostFields(), []byte("thumbnail bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostHandler_CreatePost_MissingThumbnail(t *testing.T) {
	env := setupPostTestEnv(t)
	token, _ := env.signup(t, "Alice Writer", "alice@example.com")

	body, contentType := postForm(t, validPostFields(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostHandler_DeletePost_Foreign(t *testing.T) {
	env := setupPostTestEnv(t)
	_, authorID := env.signup(t, "Alice Writer", "alice@example.com")
	otherToken, _ := env.signup(t, "Bob Reader", "bob@example.com")

	post, err := env.postService.CreatePost(services.CreatePostInput{
		CreatorID:     authorID,
		Title:         "A walk through the city",
		Category:      "travel",
		Description:   "<p>More than twelve characters of content.</p>",
		Thumbnail:     []byte("thumbnail bytes"),
		ThumbnailName: "cover.png",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	// Post survives a foreign delete attempt.
	_, err = env.postService.GetPost(post.ID)
	require.NoError(t, err)
}

func TestPostHandler_DeletePost_Owner(t *testing.T) {
	env := setupPostTestEnv(t)
	token, authorID := env.signup(t, "Alice Writer", "alice@example.com")

	post, err := env.postService.CreatePost(services.CreatePostInput{
		CreatorID:     authorID,
		Title:         "A walk through the city",
		Category:      "travel",
		Description:   "<p>More than twelve characters of content.</p>",
		Thumbnail:     []byte("thumbnail bytes"),
		ThumbnailName: "cover.png",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	getReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	getW := httptest.NewRecorder()
	env.router.ServeHTTP(getW, getReq)
	require.Equal(t, http.StatusNotFound, getW.Code)
}

func TestPostHandler_UpdatePost_WithoutThumbnail(t *testing.T) {
	env := setupPostTestEnv(t)
	token, authorID := env.signup(t, "Alice Writer", "alice@example.com")

	post, err := env.postService.CreatePost(services.CreatePostInput{
		CreatorID:     authorID,
		Title:         "A walk through the city",
		Category:      "travel",
		Description:   "<p>More than twelve characters of content.</p>",
		Thumbnail:     []byte("thumbnail bytes"),
		ThumbnailName: "cover.png",
	})
	require.NoError(t, err)

	fields := validPostFields()
	fields["title"] = "A longer walk"
	body, contentType := postForm(t, fields, nil)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/posts/%d", post.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "A longer walk", updated.Title)
	require.Equal(t, post.Thumbnail, updated.Thumbnail)
}

func TestPostHandler_ListPosts(t *testing.T) {
	env := setupPostTestEnv(t)
	_, authorID := env.signup(t, "Alice Writer", "alice@example.com")

	_, err := env.postService.CreatePost(services.CreatePostInput{
		CreatorID:     authorID,
		Title:         "A walk through the city",
		Category:      "travel",
		Description:   "<p>More than twelve characters of content.</p>",
		Thumbnail:     []byte("thumbnail bytes"),
		ThumbnailName: "cover.png",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var posts []dto.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
}
