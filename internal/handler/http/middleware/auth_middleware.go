package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/dto"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message, Path: c.Request.URL.Path})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleWare rejects requests without a valid bearer token and attaches
// the resolved user (password hash excluded from serialization) to the
// context before any handler logic runs.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "missing or malformed authorization header")
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// RequireRoles composes with AuthMiddleWare: the resolved user's role must
// be a member of the accepted set.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user")
		if !exists {
			abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		user, ok := v.(*entity.User)
		if !ok {
			abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "insufficient permissions")
	}
}

// AdminOnly re-resolves the user from the token on every call rather than
// trusting an upstream attachment, and admits only admins.
func AdminOnly(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "missing or malformed authorization header")
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if user.Role != entity.UserRoleAdmin {
			abort(c, http.StatusForbidden, "admin access required")
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
