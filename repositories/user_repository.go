package repositories

import (
	"todo-api/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	IResourceRepository[models.User]
	FindByEmail(email string) (*models.User, error)
	UpdateAvatar(id uint, avatarURL string) (*models.User, error)
}

type UserRepository struct {
	IResourceRepository[models.User]
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{IResourceRepository: NewResourceRepository[models.User](db)}
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	return r.FindBy(map[string]interface{}{"email": email})
}

func (r *UserRepository) UpdateAvatar(id uint, avatarURL string) (*models.User, error) {
	return r.Update(id, map[string]interface{}{"avatar": avatarURL})
}
