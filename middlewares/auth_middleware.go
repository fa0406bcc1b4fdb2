package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"todo-api/services"

	"github.com/gin-gonic/gin"
)

var ErrNoToken = errors.New("no token found")

// ExtractToken pulls the token from the Authorization header or the jwt
// cookie. The header wins when both are present.
func ExtractToken(ctx *gin.Context) (string, error) {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}

	if cookie, err := ctx.Cookie("jwt"); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", ErrNoToken
}

// AuthMiddleware gates protected routes: the token must verify and resolve
// to an existing user before the handler runs.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ExtractToken(ctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}
