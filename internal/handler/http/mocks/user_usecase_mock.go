package mocks

import (
	"context"
	"errors"

	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser     bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldFailGetByID        bool
	ShouldFailForgotPassword bool
	ShouldFailVerifyOTP      bool
	ShouldFailResetPassword  bool

	// Return values
	MockUser        entity.User
	MockAccessToken string
	MockResetToken  string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
			Role:  entity.UserRoleStudent,
		},
		MockAccessToken: "mock_access_token",
		MockResetToken:  "mock_reset_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password, role string) (*entity.User, string, error) {
	if m.ShouldFailCreateUser {
		return nil, "", errors.New("user creation failed")
	}
	user := m.MockUser
	user.Name = name
	user.Email = email
	user.Role = entity.NormalizeRole(role)
	return &user, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", entity.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, entity.ErrInvalidToken
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return errors.New("forgot password failed")
	}
	return nil
}

func (m *MockUserUsecase) VerifyResetOTP(ctx context.Context, email, otp string) (string, error) {
	if m.ShouldFailVerifyOTP {
		return "", entity.ErrInvalidOTP
	}
	return m.MockResetToken, nil
}

func (m *MockUserUsecase) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	if m.ShouldFailResetPassword {
		return entity.ErrInvalidToken
	}
	return nil
}
