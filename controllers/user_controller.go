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

type IUserController interface {
	Create(ctx *gin.Context)
	Index(ctx *gin.Context)
	Show(ctx *gin.Context)
	Update(ctx *gin.Context)
	Destroy(ctx *gin.Context)
	UploadAvatar(ctx *gin.Context)
}

type UserController struct {
	base          *ResourceController[models.User]
	service       services.IUserService
	uploadService services.IUploadService
}

func NewUserController(service services.IUserService, uploadService services.IUploadService) IUserController {
	return &UserController{
		base:          NewResourceController[models.User](service, "User"),
		service:       service,
		uploadService: uploadService,
	}
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Avatar:   input.Avatar,
	}
	c.base.Create(ctx, &user)
}

func (c *UserController) Index(ctx *gin.Context) {
	c.base.Index(ctx)
}

func (c *UserController) Show(ctx *gin.Context) {
	c.base.Show(ctx)
}

func (c *UserController) Update(ctx *gin.Context) {
	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.base.Update(ctx, input.Updates())
}

func (c *UserController) Destroy(ctx *gin.Context) {
	c.base.Destroy(ctx)
}

// UploadAvatar validates and stores the file, then points the user's avatar
// attribute at the stored path.
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	id, ok := ParseID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrFileRequired})
		return
	}

	avatarURL, err := c.uploadService.SaveAvatar(file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFileType) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrNotImageFile})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	user, err := c.service.UpdateAvatar(id, avatarURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"avatarUrl": user.Avatar})
}
