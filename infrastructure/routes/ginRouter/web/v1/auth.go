package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "verilearn.io/application/appErrors"
	"verilearn.io/application/controller"
	"verilearn.io/application/controller/dto"
	"verilearn.io/application/interfaces"
	"verilearn.io/application/middlewares"
)

func AuthRouter(router *gin.RouterGroup) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/signup", func(ctx *gin.Context) {
			var body dto.SignUpDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.SignUp(&interfaces.ApplicationContext[dto.SignUpDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		authRouter.POST("/login", func(ctx *gin.Context) {
			var body dto.LoginDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.Login(&interfaces.ApplicationContext[dto.LoginDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		authRouter.POST("/logout", middlewares.UserAuthenticationMiddleware(), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.Logout(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		authRouter.GET("/access-logs", middlewares.UserAuthenticationMiddleware(), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.AccessHistory(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})
	}
}
