package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-api/controllers"
	"todo-api/infra"
	"todo-api/middlewares"
	"todo-api/models"
	"todo-api/repositories"
	"todo-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository)
	uploadService := services.NewUploadService()
	userController := controllers.NewUserController(userService, uploadService)

	todoRepository := repositories.NewResourceRepository[models.Todo](db)
	todoService := services.NewTodoService(todoRepository)
	todoController := controllers.NewTodoController(todoService)

	categoryRepository := repositories.NewResourceRepository[models.Category](db)
	categoryTodoRepository := repositories.NewCategoryTodoRepository(db)
	categoryService := services.NewCategoryService(categoryRepository, categoryTodoRepository)
	categoryController := controllers.NewCategoryController(categoryService)

	categoryTodoService := services.NewCategoryTodoService(categoryTodoRepository)
	categoryTodoController := controllers.NewCategoryTodoController(categoryTodoService)

	authService := services.NewAuthService(userRepository)
	authController := controllers.NewAuthController(authService)

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	r.Static("/uploads", "./uploads")

	api := r.Group("/api")

	authRouter := api.Group("/auth")
	authRouterWithGate := api.Group("/auth", middlewares.AuthMiddleware(authService))
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouterWithGate.GET("/user", authController.CurrentUser)
	authRouterWithGate.POST("/logout", authController.Logout)

	userRouter := api.Group("/users")
	userRouter.POST("", userController.Create)
	userRouter.GET("", userController.Index)
	userRouter.GET("/:id", userController.Show)
	userRouter.PUT("/:id", userController.Update)
	userRouter.DELETE("/:id", userController.Destroy)
	userRouter.POST("/:id/avatar", userController.UploadAvatar)

	todoRouter := api.Group("/todos")
	todoRouter.POST("", todoController.Create)
	todoRouter.GET("", todoController.Index)
	todoRouter.GET("/:id", todoController.Show)
	todoRouter.PUT("/:id", todoController.Update)
	todoRouter.DELETE("/:id", todoController.Destroy)

	categoryRouter := api.Group("/categories")
	categoryRouter.POST("", categoryController.Create)
	categoryRouter.GET("", categoryController.Index)
	categoryRouter.GET("/:id", categoryController.Show)
	categoryRouter.PUT("/:id", categoryController.Update)
	categoryRouter.DELETE("/:id", categoryController.Destroy)
	categoryRouter.GET("/:id/todos", categoryController.ShowWithTodos)

	categoryTodoRouter := api.Group("/category-todo")
	categoryTodoRouter.POST("", categoryTodoController.AddTodoToCategory)
	categoryTodoRouter.DELETE("/:todoId/:categoryId", categoryTodoController.RemoveTodoFromCategory)
	categoryTodoRouter.GET("/category/:categoryId", categoryTodoController.GetTodosForCategory)
	categoryTodoRouter.GET("/todo/:todoId", categoryTodoController.GetCategoriesForTodo)

	return r
}

// corsConfig allows the configured frontend origin with credentials so the
// jwt cookie survives cross-origin requests.
func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	config.AllowOrigins = []string{origin}
	config.AllowCredentials = true
	return config
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Todo{}, &models.Category{}, &models.CategoryTodo{}); err != nil {
			panic("Failed to migrate database")
		}
	}
	return db
}

func main() {
	db := initDB()
	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
