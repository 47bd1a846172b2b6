package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`

	// Password reset artifacts. The OTP confirms the requester owns the
	// mailbox; the token authorizes the final password mutation. Both are
	// stored as SHA256 digests, never raw.
	ResetOTPHash     string    `bson:"reset_otp_hash,omitempty" json:"-"`
	ResetOTPExpire   time.Time `bson:"reset_otp_expire,omitempty" json:"-"`
	ResetTokenHash   string    `bson:"reset_token_hash,omitempty" json:"-"`
	ResetTokenExpire time.Time `bson:"reset_token_expire,omitempty" json:"-"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleEducator UserRole = "educator"
	UserRoleAdmin    UserRole = "admin"
)

func DefaultRole() UserRole {
	return UserRoleStudent
}

// NormalizeRole coerces a requested role to one selectable at registration.
// Admin is an out-of-band elevation and can never be requested.
func NormalizeRole(requested string) UserRole {
	switch UserRole(requested) {
	case UserRoleEducator:
		return UserRoleEducator
	default:
		return UserRoleStudent
	}
}
