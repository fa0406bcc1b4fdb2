package controllers

import (
	"errors"
	"net/http"
	"time"

	"todo-api/constants"
	"todo-api/dto"
	"todo-api/services"

	"github.com/gin-gonic/gin"
)

const jwtCookieMaxAge = int((24 * time.Hour) / time.Second)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	CurrentUser(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.Register(input.Name, input.Email, input.Password, input.PasswordConfirm)
	if err != nil {
		if errors.Is(err, services.ErrPasswordMismatch) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create User: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login puts the token into a browser-inaccessible cookie and returns the
// user record.
func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.SetCookie("jwt", token, jwtCookieMaxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, user)
}

// CurrentUser relies on the auth middleware having resolved the token to a
// user. The password never serializes (hidden at the model level).
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Logout clears the cookie without validating the token first.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie("jwt", "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
