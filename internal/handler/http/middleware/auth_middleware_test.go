package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/naolberhanu/LearnSphere/internal/domain/entity"
	"github.com/naolberhanu/LearnSphere/internal/handler/http/middleware"
	mocks "github.com/naolberhanu/LearnSphere/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func protectedRouter(mockUsecase *mocks.MockUserUsecase, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleWare(mockUsecase)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	r := protectedRouter(mocks.NewMockUserUsecase())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := protectedRouter(mocks.NewMockUserUsecase())

	for _, header := range []string{"sometoken", "Basic abc", "Bearer "} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := protectedRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-user-id")
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailAuthenticate = true
	r := protectedRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.MockUser.Role = entity.UserRoleStudent
	r := protectedRouter(mockUsecase, middleware.RequireRoles(entity.UserRoleEducator, entity.UserRoleAdmin))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockUsecase.MockUser.Role = entity.UserRoleEducator
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := gin.New()
	r.GET("/admin", middleware.AdminOnly(mockUsecase), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// A non-admin with a valid token is still refused.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockUsecase.MockUser.Role = entity.UserRoleAdmin
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
