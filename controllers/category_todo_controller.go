package controllers

import (
	"errors"
	"net/http"

	"todo-api/constants"
	"todo-api/dto"
	"todo-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ICategoryTodoController interface {
	AddTodoToCategory(ctx *gin.Context)
	RemoveTodoFromCategory(ctx *gin.Context)
	GetTodosForCategory(ctx *gin.Context)
	GetCategoriesForTodo(ctx *gin.Context)
}

type CategoryTodoController struct {
	service services.ICategoryTodoService
}

func NewCategoryTodoController(service services.ICategoryTodoService) ICategoryTodoController {
	return &CategoryTodoController{service: service}
}

// AddTodoToCategory creates a join row. A duplicate pair trips the composite
// key constraint and surfaces as a client error.
func (c *CategoryTodoController) AddTodoToCategory(ctx *gin.Context) {
	var input dto.CreateCategoryTodoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categoryTodo, err := c.service.AddTodoToCategory(input.TodoID, input.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create CategoryTodo: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, categoryTodo)
}

func (c *CategoryTodoController) RemoveTodoFromCategory(ctx *gin.Context) {
	todoID, ok := ParseID(ctx, "todoId")
	if !ok {
		return
	}
	categoryID, ok := ParseID(ctx, "categoryId")
	if !ok {
		return
	}

	categoryTodo, err := c.service.RemoveTodoFromCategory(todoID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "CategoryTodo not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, categoryTodo)
}

func (c *CategoryTodoController) GetTodosForCategory(ctx *gin.Context) {
	categoryID, ok := ParseID(ctx, "categoryId")
	if !ok {
		return
	}

	category, err := c.service.GetTodosForCategory(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func (c *CategoryTodoController) GetCategoriesForTodo(ctx *gin.Context) {
	todoID, ok := ParseID(ctx, "todoId")
	if !ok {
		return
	}

	todo, err := c.service.GetCategoriesForTodo(todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, todo)
}
