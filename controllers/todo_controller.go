package controllers

import (
	"net/http"

	"todo-api/dto"
	"todo-api/models"
	"todo-api/services"

	"github.com/gin-gonic/gin"
)

type ITodoController interface {
	Create(ctx *gin.Context)
	Index(ctx *gin.Context)
	Show(ctx *gin.Context)
	Update(ctx *gin.Context)
	Destroy(ctx *gin.Context)
}

type TodoController struct {
	base *ResourceController[models.Todo]
}

func NewTodoController(service services.ITodoService) ITodoController {
	return &TodoController{base: NewResourceController[models.Todo](service, "Todo")}
}

func (c *TodoController) Create(ctx *gin.Context) {
	var input dto.CreateTodoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo := models.Todo{
		Title:  input.Title,
		UserID: input.UserID,
	}
	c.base.Create(ctx, &todo)
}

func (c *TodoController) Index(ctx *gin.Context) {
	c.base.Index(ctx)
}

func (c *TodoController) Show(ctx *gin.Context) {
	c.base.Show(ctx)
}

func (c *TodoController) Update(ctx *gin.Context) {
	var input dto.UpdateTodoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.base.Update(ctx, input.Updates())
}

func (c *TodoController) Destroy(ctx *gin.Context) {
	c.base.Destroy(ctx)
}
