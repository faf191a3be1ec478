package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/okware/blog-management-api/internal/constants"
	apierrors "github.com/okware/blog-management-api/internal/errors"
	"github.com/sirupsen/logrus"
)

// ErrMissingAuthHeader indicates the request carried no Authorization header.
var ErrMissingAuthHeader = errors.New("missing Authorization header")

// RequireAuth verifies the bearer token and stores the resolved identity
// ({id, name}) in the context. Everything downstream receives the identity
// explicitly; nothing re-reads the token.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty for RequireAuth middleware")
	}

	return func(c *gin.Context) {
		tokenStr, err := extractToken(c)
		if err != nil {
			if errors.Is(err, ErrMissingAuthHeader) {
				apierrors.Unauthorized(c, "Authorization header is required")
			} else {
				apierrors.Unauthorized(c, "Invalid token format")
			}
			c.Abort()
			return
		}

		claims, err := validateToken(tokenStr, jwtSecret)
		if err != nil {
			logrus.WithError(err).Warn("rejected bearer token")
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userIDClaim, ok := claims["user_id"].(float64)
		if !ok || userIDClaim <= 0 || userIDClaim != float64(uint64(userIDClaim)) {
			apierrors.Unauthorized(c, "Invalid token claims")
			c.Abort()
			return
		}
		name, _ := claims["name"].(string)

		c.Set(constants.ContextKeyUserID, uint64(userIDClaim))
		c.Set(constants.ContextKeyUserName, name)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserName retrieves the authenticated user's name from context
func GetUserName(c *gin.Context) string {
	name, _ := c.Get(constants.ContextKeyUserName)
	s, _ := name.(string)
	return s
}

// extractToken pulls the bearer token out of the Authorization header.
func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", jwt.ErrTokenMalformed
	}
	return parts[1], nil
}

// validateToken parses the token and verifies the HMAC signature and expiry.
func validateToken(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token or claims type")
}
