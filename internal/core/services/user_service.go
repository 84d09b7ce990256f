package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dchu15/store_management_app/internal/apperrors"
	"github.com/dchu15/store_management_app/internal/core/domain"
	portsrepo "github.com/dchu15/store_management_app/internal/core/ports/repositories"
	portssvc "github.com/dchu15/store_management_app/internal/core/ports/services"
	"github.com/dchu15/store_management_app/internal/dto"
	"github.com/dchu15/store_management_app/internal/utils"
	"github.com/google/uuid"
)

// defaultPermissions are granted to every newly provisioned user. The
// reporting endpoints all sit behind cashflow/read.
var defaultPermissions = []domain.Permission{
	{Resource: "cashflow", Action: "read"},
}

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new local user with a bcrypt-hashed password and
// grants the default capabilities.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if err := s.grantDefaultPermissions(ctx, user.UserID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

// CreateOAuthUser creates the user for an OAuth provider identity, or returns
// the existing one.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string, emailVerified bool) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByProviderID(ctx, domain.AuthProvider(provider), providerUserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up OAuth user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:         userID,
		Username:       email,
		Name:           name,
		Email:          email,
		AuthProvider:   domain.AuthProvider(provider),
		ProviderUserID: providerUserID,
		EmailVerified:  emailVerified,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save OAuth user: %w", err)
	}
	if err := s.grantDefaultPermissions(ctx, user.UserID); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "OAuth user provisioned", slog.String("user_id", user.UserID), slog.String("provider", provider))
	return &user, nil
}

func (s *userService) grantDefaultPermissions(ctx context.Context, userID string) error {
	for _, perm := range defaultPermissions {
		if err := s.userRepo.GrantPermission(ctx, userID, perm.Resource, perm.Action); err != nil {
			return fmt.Errorf("failed to grant default permission %s:%s: %w", perm.Resource, perm.Action, err)
		}
	}
	return nil
}

// AuthenticateUser authenticates a local user with username and password.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// HasPermission reports whether the user holds the resource/action capability.
func (s *userService) HasPermission(ctx context.Context, userID, resource, action string) (bool, error) {
	ok, err := s.userRepo.HasPermission(ctx, userID, resource, action)
	if err != nil {
		return false, fmt.Errorf("failed to check permission %s:%s: %w", resource, action, err)
	}
	return ok, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
