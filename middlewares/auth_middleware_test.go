package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo-api/models"
	"todo-api/repositories"
	"todo-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGate(t *testing.T) (*gin.Engine, services.IAuthService) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}, &models.Category{}, &models.CategoryTodo{}))

	authService := services.NewAuthService(repositories.NewUserRepository(db))

	r := gin.New()
	r.GET("/protected", AuthMiddleware(authService), func(ctx *gin.Context) {
		user := ctx.MustGet("user").(*models.User)
		ctx.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r, authService
}

func registerAndLogin(t *testing.T, authService services.IAuthService, name string, email string) string {
	t.Helper()
	_, err := authService.Register(name, email, "Secret123!", "Secret123!")
	require.NoError(t, err)
	_, token, err := authService.Login(email, "Secret123!")
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	r, _ := setupGate(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	r, authService := setupGate(t)
	token := registerAndLogin(t, authService, "Alice", "alice@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestAuthMiddlewareCookieToken(t *testing.T) {
	r, authService := setupGate(t)
	token := registerAndLogin(t, authService, "Alice", "alice@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// When both sources carry a token, the header one is the one verified.
func TestAuthMiddlewareHeaderPrecedence(t *testing.T) {
	r, authService := setupGate(t)
	aliceToken := registerAndLogin(t, authService, "Alice", "alice@example.com")
	bobToken := registerAndLogin(t, authService, "Bob", "bob@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: aliceToken})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob@example.com")
}

func TestAuthMiddlewareInvalidHeaderWithValidCookie(t *testing.T) {
	r, authService := setupGate(t)
	aliceToken := registerAndLogin(t, authService, "Alice", "alice@example.com")

	// Header takes precedence even when its token is garbage.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	req.AddCookie(&http.Cookie{Name: "jwt", Value: aliceToken})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExtractTokenPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.Header.Set("Authorization", "Bearer header-token")
	ctx.Request.AddCookie(&http.Cookie{Name: "jwt", Value: "cookie-token"})

	token, err := ExtractToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
}
