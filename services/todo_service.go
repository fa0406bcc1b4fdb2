package services

import (
	"todo-api/models"
	"todo-api/repositories"
)

type ITodoService interface {
	repositories.IResourceRepository[models.Todo]
}

// TodoService is a pass-through over the generic todo repository.
type TodoService struct {
	repositories.IResourceRepository[models.Todo]
}

func NewTodoService(repository repositories.IResourceRepository[models.Todo]) ITodoService {
	return &TodoService{IResourceRepository: repository}
}
