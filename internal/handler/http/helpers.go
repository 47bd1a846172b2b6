package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/dto"
)

// redactInternals is set from the production flag at router construction;
// when true, unrecognized errors surface as a generic message with no
// internals.
var redactInternals bool

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message, Path: c.Request.URL.Path})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler maps a domain error to its HTTP status. Unrecognized
// errors become a 500 whose message is redacted in production; stack traces
// never reach clients.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrInvalidOTP),
		errors.Is(err, entity.ErrInvalidSignature),
		errors.Is(err, entity.ErrAlreadyEnrolled):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrInvalidToken):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, entity.ErrForbidden),
		errors.Is(err, entity.ErrNotEnrolled):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	case errors.Is(err, entity.ErrNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrCourseNotFound),
		errors.Is(err, entity.ErrLessonNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrEmailTaken):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrUpstream):
		ErrorHandler(c, http.StatusBadGateway, err.Error())
	default:
		msg := err.Error()
		if redactInternals {
			msg = "internal server error"
		}
		ErrorHandler(c, http.StatusInternalServerError, msg)
	}
}

// CurrentUser retrieves the authenticated user attached by the auth
// middleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
