package entity

import "errors"

// Domain error sentinels. Handlers match these with errors.Is and map them
// to HTTP statuses; usecases wrap them with context via fmt.Errorf and %w.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrInvalidSignature   = errors.New("payment signature verification failed")
	ErrValidation         = errors.New("invalid input")
	ErrUpstream           = errors.New("upstream service unavailable")
)
