package services

import (
	"todo-api/models"
	"todo-api/repositories"
)

type IUserService interface {
	repositories.IResourceRepository[models.User]
	FindByEmail(email string) (*models.User, error)
	UpdateAvatar(id uint, avatarURL string) (*models.User, error)
}

// UserService is a pass-through over the user repository.
type UserService struct {
	repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{IUserRepository: repository}
}
