package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/dto"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	GetCurrentUser(*gin.Context)
	ForgotPassword(*gin.Context)
	VerifyOTP(*gin.Context)
	ResetPassword(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	})
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// ForgotPassword handles password reset request
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	// Don't reveal if email exists or not
	_ = h.userUsecase.ForgotPassword(c.Request.Context(), req.Email)
	MessageHandler(c, http.StatusOK, "If an account with that email exists, a reset code has been sent")
}

// VerifyOTP handles the reset-code confirmation step
func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	resetToken, err := h.userUsecase.VerifyResetOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{"reset_token": resetToken})
}

// ResetPassword handles password reset with token
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.ResetPassword(c.Request.Context(), req.Email, req.Token, req.Password); err != nil {
		DomainErrorHandler(c, err)
		return
	}

	MessageHandler(c, http.StatusOK, "Password reset successfully")
}
