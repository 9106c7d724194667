package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Validation limits
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
	// MaxPasswordLength is bcrypt's input limit in bytes.
	MaxPasswordLength = 72
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Token lifetimes
const (
	AccessTokenDuration        = 7 * 24 * time.Hour
	VerifyEmailTokenDuration   = time.Hour
	ResetPasswordTokenDuration = time.Hour
)
