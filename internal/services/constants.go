package services

const (
	// MinPasswordLength is the minimum accepted user password length.
	MinPasswordLength = 8

	// MaxMessageLength is the maximum accepted message text length,
	// matching the text column width.
	MaxMessageLength = 255
)
