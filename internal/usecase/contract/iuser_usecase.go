package contract

import (
	"context"

	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
)

// IUserUseCase defines the authentication and credential operations.
type IUserUseCase interface {
	// Register creates a user and returns it with a freshly issued token.
	// Roles outside {student, educator} are coerced to student.
	Register(ctx context.Context, name, email, password, role string) (*entity.User, string, error)
	// Login authenticates by email and password and returns the user with a
	// freshly issued token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Authenticate resolves a bearer token to an existing user.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// ForgotPassword issues a reset OTP to the user's mailbox. It reports
	// success whether or not the email exists.
	ForgotPassword(ctx context.Context, email string) error
	// VerifyResetOTP checks the presented OTP and, on success, issues the
	// reset token that authorizes the final password mutation.
	VerifyResetOTP(ctx context.Context, email, otp string) (string, error)
	// ResetPassword completes the reset flow with the raw reset token.
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error
}
