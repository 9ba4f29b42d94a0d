package constants

// Context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserName  = "user_name"
	ContextKeyUserRole  = "user_role"
)

const (
	MinPasswordLength = 8

	// MaxUploadFiles caps a single multi-image upload request
	MaxUploadFiles = 10
)
