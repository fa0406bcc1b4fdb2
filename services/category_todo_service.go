package services

import (
	"todo-api/models"
	"todo-api/repositories"
)

type ICategoryTodoService interface {
	AddTodoToCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error)
	RemoveTodoFromCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error)
	GetTodosForCategory(categoryID uint) (*models.Category, error)
	GetCategoriesForTodo(todoID uint) (*models.Todo, error)
}

type CategoryTodoService struct {
	repository repositories.ICategoryTodoRepository
}

func NewCategoryTodoService(repository repositories.ICategoryTodoRepository) ICategoryTodoService {
	return &CategoryTodoService{repository: repository}
}

func (s *CategoryTodoService) AddTodoToCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error) {
	return s.repository.AddTodoToCategory(todoID, categoryID)
}

func (s *CategoryTodoService) RemoveTodoFromCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error) {
	return s.repository.RemoveTodoFromCategory(todoID, categoryID)
}

func (s *CategoryTodoService) GetTodosForCategory(categoryID uint) (*models.Category, error) {
	return s.repository.GetCategoryWithTodos(categoryID)
}

func (s *CategoryTodoService) GetCategoriesForTodo(todoID uint) (*models.Todo, error) {
	return s.repository.GetTodoWithCategories(todoID)
}
