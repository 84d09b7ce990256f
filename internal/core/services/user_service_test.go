package services_test

import (
	"context"
	"testing"

	"github.com/dchu15/store_management_app/internal/apperrors"
	"github.com/dchu15/store_management_app/internal/core/domain"
	portssvc "github.com/dchu15/store_management_app/internal/core/ports/services"
	"github.com/dchu15/store_management_app/internal/core/services"
	"github.com/dchu15/store_management_app/internal/dto"
	"github.com/dchu15/store_management_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) HasPermission(ctx context.Context, userID, resource, action string) (bool, error) {
	args := m.Called(ctx, userID, resource, action)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GrantPermission(ctx context.Context, userID, resource, action string) error {
	args := m.Called(ctx, userID, resource, action)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "newuser",
		Password: "s3cret-pass",
		Name:     "New User",
		Email:    "new@example.com",
	}

	suite.mockRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == req.Username &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()
	suite.mockRepo.On("GrantPermission", ctx, mock.AnythingOfType("string"), "cashflow", "read").Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Username, user.Username)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "taken", Password: "whatever1"}
	existing := &domain.User{UserID: uuid.NewString(), Username: "taken"}

	suite.mockRepo.On("FindUserByUsername", ctx, "taken").Return(existing, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ReturnsExisting() {
	ctx := context.Background()
	existing := &domain.User{
		UserID:         uuid.NewString(),
		Username:       "g@example.com",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: "google-123",
	}

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-123").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "G User", "g@example.com", "google", "google-123", true)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ProvisionsNew() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == "google-456" &&
			u.Username == "new@example.com" &&
			u.EmailVerified
	})).Return(nil).Once()
	suite.mockRepo.On("GrantPermission", ctx, mock.AnythingOfType("string"), "cashflow", "read").Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "New G", "new@example.com", "google", "google-456", true)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Empty(user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "alice", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "alice", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthUserHasNoPassword() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), Username: "g@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockRepo.On("FindUserByUsername", ctx, "g@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "g@example.com", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestHasPermission() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("HasPermission", ctx, userID, "cashflow", "read").Return(true, nil).Once()

	ok, err := suite.service.HasPermission(ctx, userID, "cashflow", "read")

	suite.Require().NoError(err)
	suite.True(ok)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
