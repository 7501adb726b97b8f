package middlewares

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	apperrors "verilearn.io/application/appErrors"
	"verilearn.io/application/interfaces"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/auth"
)

// UserAuthenticationMiddleware verifies the bearer token and stashes the
// caller's identity in the AppContext. When roles are given, callers outside
// them are rejected.
func UserAuthenticationMiddleware(allowedRoles ...entities.StudentRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.AuthenticationError(ctx, "provide an auth token", nil)
			return
		}

		token, err := auth.DecodeAuthToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || !token.Valid {
			apperrors.AuthenticationError(ctx, "invalid or expired auth token", nil)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			apperrors.AuthenticationError(ctx, "invalid or expired auth token", nil)
			return
		}

		idCard, _ := claims["idCard"].(string)
		firstName, _ := claims["firstName"].(string)
		roleClaim, _ := claims["role"].(string)
		role := entities.StudentRole(roleClaim)
		if idCard == "" {
			apperrors.AuthenticationError(ctx, "invalid or expired auth token", nil)
			return
		}
		if len(allowedRoles) != 0 && !slices.Contains(allowedRoles, role) {
			apperrors.AuthenticationError(ctx, "you do not have permission to perform this action", nil)
			return
		}

		ctx.Set("AppContext", &interfaces.ApplicationContext[any]{
			Ctx: ctx,
			Keys: map[string]any{
				"IDCard":    idCard,
				"FirstName": firstName,
				"Role":      string(role),
			},
		})
		ctx.Next()
	}
}
