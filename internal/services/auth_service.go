package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/okware/blog-management-api/internal/constants"
	"github.com/okware/blog-management-api/internal/models"
	"github.com/okware/blog-management-api/internal/repository"
	"github.com/okware/blog-management-api/internal/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields        = errors.New("fill in all fields")
	ErrEmailTaken           = errors.New("email already registered")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrWrongPassword        = errors.New("invalid current password")
	ErrUserNotFound         = errors.New("user not found")
	ErrNoFileProvided       = errors.New("no file provided")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles accounts: registration, credential verification,
// token issuance, and profile/avatar mutation.
type AuthService struct {
	userRepo   repository.UserRepository
	assetStore storage.AssetStore
	jwtSecret  []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, assetStore storage.AssetStore, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		assetStore: assetStore,
		jwtSecret:  []byte(jwtSecret),
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register creates a new account and returns the normalized email as a
// confirmation. The stored record is never handed back.
func (s *AuthService) Register(input RegisterInput) (string, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return "", ErrMissingFields
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	if len(input.Password) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.PasswordHashCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return user.Email, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the issued bearer token and the identity it encodes.
type LoginResult struct {
	Token string
	ID    uint64
	Name  string
}

// Login verifies credentials and issues a bearer token. Unknown account and
// wrong password both return ErrInvalidCredentials, so the response is not
// an account-existence oracle.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{Token: token, ID: user.ID, Name: user.Name}, nil
}

// issueToken signs a token carrying {id, name} with a one hour validity
// window. Email is deliberately left out so an email change does not
// invalidate outstanding tokens.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"exp":     time.Now().Add(constants.TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// GetProfile retrieves a user by ID.
func (s *AuthService) GetProfile(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ListAuthors returns all users.
func (s *AuthService) ListAuthors() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return users, nil
}

// ChangeAvatar replaces the user's profile picture. The previous avatar is
// removed best-effort: a failed removal is logged and does not block the
// new upload.
func (s *AuthService) ChangeAvatar(userID uint64, data []byte, originalName string) (*models.User, error) {
	if len(data) == 0 {
		return nil, ErrNoFileProvided
	}
	if int64(len(data)) > constants.MaxAvatarBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", storage.ErrTooLarge, len(data), constants.MaxAvatarBytes)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.Avatar != "" {
		if err := s.assetStore.Delete(user.Avatar); err != nil {
			logrus.WithError(err).WithField("avatar", user.Avatar).
				Warn("failed to remove previous avatar")
		}
	}

	filename, err := s.assetStore.Store(data, originalName, constants.MaxAvatarBytes)
	if err != nil {
		return nil, err
	}

	user.Avatar = filename
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	return user, nil
}

// EditProfileInput carries a full profile update. Every field is required;
// the update replaces name, email, and password hash in one record write.
type EditProfileInput struct {
	Name               string
	Email              string
	CurrentPassword    string
	NewPassword        string
	ConfirmNewPassword string
}

// EditProfile updates the caller's own profile after re-verifying their
// current password.
func (s *AuthService) EditProfile(selfID uint64, input EditProfileInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.CurrentPassword == "" ||
		input.NewPassword == "" || input.ConfirmNewPassword == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.FindByID(selfID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// The target email may be the caller's own, but never another account's.
	if existing, err := s.userRepo.FindByEmail(email); err == nil {
		if existing.ID != selfID {
			return nil, ErrEmailTaken
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	if input.NewPassword != input.ConfirmNewPassword {
		return nil, ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), constants.PasswordHashCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user.Name = name
	user.Email = email
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
