package services

import (
	"fmt"
	"testing"

	"todo-api/models"
	"todo-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}, &models.Category{}, &models.CategoryTodo{}))
	return db
}

func setupAuthService(t *testing.T) (IAuthService, repositories.IUserRepository) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	userRepository := repositories.NewUserRepository(setupTestDB(t))
	return NewAuthService(userRepository), userRepository
}

func TestRegisterHashesPassword(t *testing.T) {
	service, userRepository := setupAuthService(t)

	user, err := service.Register("Alice", "alice@example.com", "Secret123!", "Secret123!")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "Secret123!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Secret123!")))

	stored, err := userRepository.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterPasswordMismatchNeverReachesStore(t *testing.T) {
	service, userRepository := setupAuthService(t)

	_, err := service.Register("Alice", "alice@example.com", "Secret123!", "Different123!")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	count, err := userRepository.Count(nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.Register("Alice", "alice@example.com", "Secret123!", "Secret123!")
	require.NoError(t, err)

	_, err = service.Register("Other", "alice@example.com", "Secret123!", "Secret123!")
	assert.Error(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.Register("Alice", "alice@example.com", "Secret123!", "Secret123!")
	require.NoError(t, err)

	_, _, err = service.Login("alice@example.com", "WrongPassword1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.Login("nobody@example.com", "Secret123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginTokenRoundTrip(t *testing.T) {
	service, _ := setupAuthService(t)

	registered, err := service.Register("Alice", "alice@example.com", "Secret123!", "Secret123!")
	require.NoError(t, err)

	user, token, err := service.Login("alice@example.com", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	resolved, err := service.GetUserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
}

func TestGetUserFromTokenRejectsGarbage(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.GetUserFromToken("not-a-token")
	assert.Error(t, err)
}

func TestGetUserFromTokenUnresolvableID(t *testing.T) {
	service, userRepository := setupAuthService(t)

	registered, err := service.Register("Alice", "alice@example.com", "Secret123!", "Secret123!")
	require.NoError(t, err)

	_, token, err := service.Login("alice@example.com", "Secret123!")
	require.NoError(t, err)

	_, err = userRepository.Destroy(registered.ID)
	require.NoError(t, err)

	_, err = service.GetUserFromToken(token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
