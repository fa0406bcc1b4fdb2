package repositories

import (
	"todo-api/models"

	"gorm.io/gorm"
)

// ICategoryTodoRepository manages the todo/category join rows. The composite
// (todoId, categoryId) key is the address, so this repository does not reuse
// the id-addressed generic contract.
type ICategoryTodoRepository interface {
	AddTodoToCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error)
	RemoveTodoFromCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error)
	GetCategoryWithTodos(categoryID uint) (*models.Category, error)
	GetTodoWithCategories(todoID uint) (*models.Todo, error)
}

type CategoryTodoRepository struct {
	db *gorm.DB
}

func NewCategoryTodoRepository(db *gorm.DB) ICategoryTodoRepository {
	return &CategoryTodoRepository{db: db}
}

func (r *CategoryTodoRepository) AddTodoToCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error) {
	categoryTodo := models.CategoryTodo{
		TodoID:     todoID,
		CategoryID: categoryID,
	}
	if err := r.db.Create(&categoryTodo).Error; err != nil {
		return nil, err
	}

	var created models.CategoryTodo
	err := r.db.Preload("Todo").Preload("Category").
		First(&created, "todo_id = ? AND category_id = ?", todoID, categoryID).Error
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CategoryTodoRepository) RemoveTodoFromCategory(todoID uint, categoryID uint) (*models.CategoryTodo, error) {
	var categoryTodo models.CategoryTodo
	err := r.db.Preload("Todo").Preload("Category").
		First(&categoryTodo, "todo_id = ? AND category_id = ?", todoID, categoryID).Error
	if err != nil {
		return nil, err
	}

	result := r.db.Delete(&models.CategoryTodo{}, "todo_id = ? AND category_id = ?", todoID, categoryID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &categoryTodo, nil
}

func (r *CategoryTodoRepository) GetCategoryWithTodos(categoryID uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("Todos.Todo").First(&category, "id = ?", categoryID).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryTodoRepository) GetTodoWithCategories(todoID uint) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.Preload("Categories.Category").First(&todo, "id = ?", todoID).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
