package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	apperrors "verilearn.io/application/appErrors"
	"verilearn.io/infrastructure/logger"
	"verilearn.io/infrastructure/ratelimit"
	webRoutev1 "verilearn.io/infrastructure/routes/ginRouter/web/v1"
	server_response "verilearn.io/infrastructure/serverResponse"
	startup "verilearn.io/infrastructure/startUp"
)

type ginServer struct{}

func (s *ginServer) Start() {
	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(logger.RequestLogger())

	origins := []string{}
	if os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:5173")
	} else if os.Getenv("GIN_MODE") == "release" {
		origins = append(origins, "https://app.verilearn.io")
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())
	// Face frames arrive base64-encoded in JSON bodies.
	server.MaxMultipartMemory = 15 << 20

	routerV1 := server.Group("/api/v1")
	{
		webRoutev1.AuthRouter(routerV1)
		webRoutev1.QuizRouter(routerV1)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, "pong!", nil, nil, nil)
	})

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL), nil)
	})

	ginMode := os.Getenv("GIN_MODE")
	port := os.Getenv("PORT")
	if ginMode == "debug" || ginMode == "release" {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", port))
		server.Run(fmt.Sprintf(":%s", port))
	} else {
		panic(fmt.Sprintf("invalid gin mode used - %s", ginMode))
	}
}
