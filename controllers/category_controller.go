package controllers

import (
	"errors"
	"net/http"

	"todo-api/constants"
	"todo-api/dto"
	"todo-api/models"
	"todo-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ICategoryController interface {
	Create(ctx *gin.Context)
	Index(ctx *gin.Context)
	Show(ctx *gin.Context)
	Update(ctx *gin.Context)
	Destroy(ctx *gin.Context)
	ShowWithTodos(ctx *gin.Context)
}

type CategoryController struct {
	base    *ResourceController[models.Category]
	service services.ICategoryService
}

func NewCategoryController(service services.ICategoryService) ICategoryController {
	return &CategoryController{
		base:    NewResourceController[models.Category](service, "Category"),
		service: service,
	}
}

func (c *CategoryController) Create(ctx *gin.Context) {
	var input dto.CreateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.base.Create(ctx, &models.Category{Title: input.Title})
}

func (c *CategoryController) Index(ctx *gin.Context) {
	c.base.Index(ctx)
}

func (c *CategoryController) Show(ctx *gin.Context) {
	c.base.Show(ctx)
}

func (c *CategoryController) Update(ctx *gin.Context) {
	var input dto.UpdateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.base.Update(ctx, input.Updates())
}

func (c *CategoryController) Destroy(ctx *gin.Context) {
	c.base.Destroy(ctx)
}

// ShowWithTodos returns the category together with its joined todos.
func (c *CategoryController) ShowWithTodos(ctx *gin.Context) {
	id, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	category, err := c.service.FindCategoryWithTodos(id)
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
