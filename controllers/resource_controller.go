package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"todo-api/constants"
	"todo-api/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResourceController is the shared request-handling base for id-addressed
// entities. Concrete controllers bind their own DTOs and delegate here, so
// composition replaces the inheritance the pattern is usually built on.
type ResourceController[T any] struct {
	repository repositories.IResourceRepository[T]
	name       string
}

func NewResourceController[T any](repository repositories.IResourceRepository[T], name string) *ResourceController[T] {
	return &ResourceController[T]{repository: repository, name: name}
}

func ParseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}

// Create re-wraps any store failure as a client error carrying the
// underlying message.
func (c *ResourceController[T]) Create(ctx *gin.Context, entity *T) {
	created, err := c.repository.Create(entity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to create %s: %s", c.name, err.Error())})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *ResourceController[T]) Index(ctx *gin.Context) {
	entities, err := c.repository.All(nil)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, entities)
}

func (c *ResourceController[T]) Show(ctx *gin.Context) {
	id, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	entity, err := c.repository.Find(id)
	if err != nil {
		c.renderLookupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entity)
}

func (c *ResourceController[T]) Update(ctx *gin.Context, updates map[string]interface{}) {
	id, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	entity, err := c.repository.Update(id, updates)
	if err != nil {
		c.renderLookupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entity)
}

// Destroy answers with a confirmation message rather than the deleted row.
func (c *ResourceController[T]) Destroy(ctx *gin.Context) {
	id, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	if _, err := c.repository.Destroy(id); err != nil {
		c.renderLookupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s successfully deleted", c.name)})
}

func (c *ResourceController[T]) renderLookupError(ctx *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", c.name)})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
}
