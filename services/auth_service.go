package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"todo-api/models"
	"todo-api/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost    = 12
	tokenLifetime = 24 * time.Hour
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type IAuthService interface {
	Register(name string, email string, password string, passwordConfirm string) (*models.User, error)
	Login(email string, password string) (*models.User, string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	userRepository repositories.IUserRepository
}

func NewAuthService(userRepository repositories.IUserRepository) IAuthService {
	return &AuthService{userRepository: userRepository}
}

// Register hashes the password and delegates to the user repository. Email
// uniqueness is left to the store constraint.
func (s *AuthService) Register(name string, email string, password string, passwordConfirm string) (*models.User, error) {
	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	return s.userRepository.Create(&user)
}

// Login returns the matching user together with a signed token. A missing
// user and a failed hash comparison are indistinguishable to the caller.
func (s *AuthService) Login(email string, password string) (*models.User, string, error) {
	user, err := s.userRepository.FindByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := CreateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func CreateToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("SECRET_KEY")))
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if exp, ok := claims["exp"].(float64); !ok || float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	user, err := s.userRepository.Find(uint(sub))
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
