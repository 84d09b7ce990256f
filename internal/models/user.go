package models

import "time"

// User represents a user of the application.
// PasswordHash is empty for users provisioned through an OAuth provider.
type User struct {
	UserID         string `db:"user_id"`
	Username       string `db:"username"`
	PasswordHash   string `db:"password_hash"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	AuthProvider   string `db:"auth_provider"`
	ProviderUserID string `db:"provider_user_id"`
	EmailVerified  bool   `db:"email_verified"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// Permission is a named capability over a resource (e.g. cashflow/read).
type Permission struct {
	PermissionID int64  `db:"id"`
	Resource     string `db:"resource"`
	Action       string `db:"action"`
}

// UserPermission links a user to a granted permission.
type UserPermission struct {
	UserID       string `db:"user_id"`
	PermissionID int64  `db:"permission_id"`
}
