package contract

import (
	"context"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email. Email matching is
	// case-insensitive; repositories store emails lowercased.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// SetResetOTP stores the hashed reset OTP and its expiry on the user.
	SetResetOTP(ctx context.Context, id string, otpHash string, expire time.Time) error
	// SetResetToken stores the hashed reset token and its expiry on the user.
	SetResetToken(ctx context.Context, id string, tokenHash string, expire time.Time) error
	// ClearResetArtifacts removes all reset OTP/token fields from the user.
	ClearResetArtifacts(ctx context.Context, id string) error
	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role entity.UserRole) (int64, error)
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
