package repositories

import (
	"context"

	"github.com/dchu15/store_management_app/internal/core/domain"
)

// UserRepository defines persistence operations for users and their granted
// permissions.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns apperrors.ErrNotFound when no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername returns apperrors.ErrNotFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByProviderID looks a user up by OAuth provider identity and
	// returns apperrors.ErrNotFound when no such user exists.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// HasPermission reports whether the user holds the resource/action
	// capability.
	HasPermission(ctx context.Context, userID, resource, action string) (bool, error)

	// GrantPermission grants the resource/action capability to the user,
	// creating the permission row if needed.
	GrantPermission(ctx context.Context, userID, resource, action string) error
}
