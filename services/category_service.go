package services

import (
	"todo-api/models"
	"todo-api/repositories"
)

type ICategoryService interface {
	repositories.IResourceRepository[models.Category]
	FindCategoryWithTodos(id uint) (*models.Category, error)
}

type CategoryService struct {
	repositories.IResourceRepository[models.Category]
	categoryTodoRepository repositories.ICategoryTodoRepository
}

func NewCategoryService(
	repository repositories.IResourceRepository[models.Category],
	categoryTodoRepository repositories.ICategoryTodoRepository,
) ICategoryService {
	return &CategoryService{
		IResourceRepository:    repository,
		categoryTodoRepository: categoryTodoRepository,
	}
}

func (s *CategoryService) FindCategoryWithTodos(id uint) (*models.Category, error) {
	return s.categoryTodoRepository.GetCategoryWithTodos(id)
}
