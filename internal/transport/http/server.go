package http

import (
	"github.com/gin-gonic/gin"

	appsvc "userboard/internal/app"
	"userboard/internal/bootstrap"
	"userboard/internal/repository"
	"userboard/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)
	userService := appsvc.NewUserService(userRepo, postRepo)
	postService := appsvc.NewPostService(postRepo, userRepo)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)
	router.POST("/link-id", userHandler.LinkID)
	router.GET("/user-details/:user_id", userHandler.Details)
	router.DELETE("/delete-user/:user_id", userHandler.Delete)

	router.POST("/posts/", postHandler.Create)
	router.GET("/users/:user_id/posts/", postHandler.ListByUser)
	router.GET("/posts/:post_id", postHandler.Get)
	router.PUT("/posts/:post_id", postHandler.Update)
	router.DELETE("/posts/:post_id", postHandler.Delete)

	return router
}
