package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

const errInternalServer = "internal server error"

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomGenerator contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, name, email, password, role string) (*entity.User, string, error) {
	email = normalizeEmail(email)
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}
	if strings.TrimSpace(name) == "" {
		return nil, "", fmt.Errorf("%w: name is required", entity.ErrValidation)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", errors.New(errInternalServer)
	}
	if existing != nil {
		return nil, "", entity.ErrEmailTaken
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.NormalizeRole(role),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	return user, token, nil
}

// Login handles user login and token generation. The failure message never
// distinguishes a missing account from a wrong password.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	return user, token, nil
}

// Authenticate resolves an access token to an existing user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidToken, err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidToken
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, errors.New(errInternalServer)
	}

	return user, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}

// ForgotPassword issues a six-digit reset OTP valid for the configured
// window. Callers respond identically whether or not the email exists.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil
		}
		uc.logger.Errorf("failed to retrieve user for password reset: %v", err)
		return errors.New(errInternalServer)
	}

	otp, err := uc.randomGenerator.GenerateOTP()
	if err != nil {
		uc.logger.Errorf("failed to generate reset otp: %v", err)
		return errors.New(errInternalServer)
	}

	expire := time.Now().Add(uc.config.GetResetOTPExpiry())
	if err := uc.userRepo.SetResetOTP(ctx, user.ID, uc.hasher.HashString(otp), expire); err != nil {
		uc.logger.Errorf("failed to store reset otp for user %s: %v", user.ID, err)
		return errors.New(errInternalServer)
	}

	subject := "Your password reset code"
	body := fmt.Sprintf("Hi %s,\n\nYour password reset code is %s. It expires in %d minutes.\n\nIf you did not request this, please ignore this email.",
		user.Name, otp, int(uc.config.GetResetOTPExpiry().Minutes()))
	if err := uc.mailService.SendEmail(ctx, user.Email, subject, body); err != nil {
		uc.logger.Errorf("failed to send reset otp email to %s: %v", user.Email, err)
		return errors.New(errInternalServer)
	}

	return nil
}

// VerifyResetOTP checks the presented OTP and, on success, mints the reset
// token completing step two of the reset flow. The raw token goes back to
// the caller; only its digest is stored. A fast digest is deliberate here:
// the token already carries 160 bits of entropy, so bcrypt would buy nothing.
func (uc *UserUsecase) VerifyResetOTP(ctx context.Context, email, otp string) (string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return "", entity.ErrInvalidOTP
		}
		uc.logger.Errorf("failed to retrieve user for otp verification: %v", err)
		return "", errors.New(errInternalServer)
	}

	if user.ResetOTPHash == "" || time.Now().After(user.ResetOTPExpire) {
		return "", entity.ErrInvalidOTP
	}
	if !uc.hasher.CheckHash(otp, user.ResetOTPHash) {
		return "", entity.ErrInvalidOTP
	}

	resetToken, err := uc.randomGenerator.GenerateRandomToken(20)
	if err != nil {
		uc.logger.Errorf("failed to generate reset token: %v", err)
		return "", errors.New(errInternalServer)
	}

	expire := time.Now().Add(uc.config.GetResetTokenExpiry())
	if err := uc.userRepo.SetResetToken(ctx, user.ID, uc.hasher.HashString(resetToken), expire); err != nil {
		uc.logger.Errorf("failed to store reset token for user %s: %v", user.ID, err)
		return "", errors.New(errInternalServer)
	}

	return resetToken, nil
}

// ResetPassword completes the reset flow: the raw token must match the
// stored digest within its window; the new password is bcrypt-hashed and all
// reset artifacts are cleared.
func (uc *UserUsecase) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.ErrInvalidToken
		}
		uc.logger.Errorf("failed to retrieve user for password reset completion: %v", err)
		return errors.New(errInternalServer)
	}

	if user.ResetTokenHash == "" || time.Now().After(user.ResetTokenExpire) {
		return entity.ErrInvalidToken
	}
	if !uc.hasher.CheckHash(resetToken, user.ResetTokenHash) {
		return entity.ErrInvalidToken
	}
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash new password: %v", err)
		return errors.New(errInternalServer)
	}

	if err := uc.userRepo.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		uc.logger.Errorf("failed to update password for user %s: %v", user.ID, err)
		return errors.New(errInternalServer)
	}

	if err := uc.userRepo.ClearResetArtifacts(ctx, user.ID); err != nil {
		uc.logger.Warnf("failed to clear reset artifacts for user %s: %v", user.ID, err)
	}

	return nil
}
