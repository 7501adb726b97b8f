package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "verilearn.io/application/appErrors"
	"verilearn.io/application/controller"
	"verilearn.io/application/controller/dto"
	"verilearn.io/application/interfaces"
	"verilearn.io/application/middlewares"
	"verilearn.io/entities"
)

func QuizRouter(router *gin.RouterGroup) {
	quizRouter := router.Group("/quiz")
	{
		quizRouter.POST("/generate", middlewares.UserAuthenticationMiddleware(entities.StudentRoleProfessor), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.GenerateQuizDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.GenerateQuiz(&interfaces.ApplicationContext[dto.GenerateQuizDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		quizRouter.GET("/all", middlewares.UserAuthenticationMiddleware(entities.StudentRoleProfessor), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.ListQuizzes(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		quizRouter.PATCH("/post/:id", middlewares.UserAuthenticationMiddleware(entities.StudentRoleProfessor), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.PostQuiz(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		quizRouter.GET("/posted", middlewares.UserAuthenticationMiddleware(), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.ListPostedQuizzes(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		quizRouter.GET("/single/:id", middlewares.UserAuthenticationMiddleware(), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.GetQuiz(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})

		quizRouter.POST("/submit/:id", middlewares.UserAuthenticationMiddleware(entities.StudentRoleStudent), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.SubmitQuizDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.SubmitQuiz(&interfaces.ApplicationContext[dto.SubmitQuizDTO]{
				Ctx:  ctx,
				Body: &body,
				Keys: appContext.Keys,
			})
		})

		quizRouter.GET("/results", middlewares.UserAuthenticationMiddleware(entities.StudentRoleStudent), func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			controller.QuizResults(&interfaces.ApplicationContext[any]{
				Ctx:  ctx,
				Keys: appContext.Keys,
			})
		})
	}
}
