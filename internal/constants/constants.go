package constants

import "time"

// Password rules
const (
	MinPasswordLength = 6
	PasswordHashCost  = 10
)

// Upload size ceilings in bytes
const (
	MaxThumbnailBytes = 2_000_000
	MaxAvatarBytes    = 500_000
)

// MinDescriptionLength is the minimum rich-text description length.
// The editor wraps empty content in markup that is 11 characters long,
// so anything shorter than 12 carries no actual text.
const MinDescriptionLength = 12

// TokenTTL is the validity window of issued bearer tokens.
const TokenTTL = time.Hour

// Context keys for the authenticated identity
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
)
