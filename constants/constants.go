package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Error messages
const (
	ErrUnexpected   = "Unexpected error"
	ErrInvalidID    = "Invalid id"
	ErrInvalidInput = "Invalid input"
	ErrFileRequired = "File is required"
	ErrNotImageFile = "Only image files are allowed"
)

// Avatar upload destination and the public path it is served under.
const (
	AvatarDir       = "./uploads/avatars"
	AvatarPublicDir = "/uploads/avatars"
)
