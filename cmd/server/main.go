package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ashhalliday14/Bookstore-API/internal/config"
	"github.com/ashhalliday14/Bookstore-API/internal/controllers"
	"github.com/ashhalliday14/Bookstore-API/internal/database"
	"github.com/ashhalliday14/Bookstore-API/internal/middleware"
	"github.com/ashhalliday14/Bookstore-API/internal/repositories"
	"github.com/ashhalliday14/Bookstore-API/internal/routes"
	"github.com/ashhalliday14/Bookstore-API/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := database.Connect(&cfg.Database); err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	bookRepo := repositories.NewBookRepository(db)

	// Initialize services
	authService, err := services.NewAuthService(userRepo, sessionRepo, cfg)
	if err != nil {
		log.Fatalf("failed to initialize auth service: %v", err)
	}
	userService := services.NewUserService(userRepo)
	bookService := services.NewBookService(bookRepo)

	// Initialize controllers
	sessionController := controllers.NewSessionController(authService)
	userController := controllers.NewUserController(userService)
	bookController := controllers.NewBookController(bookService)

	// Setup router
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORS())
	routes.SetupRoutes(router, sessionController, userController, bookController, middleware.AuthMiddleware(authService))

	addr := cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port)
	go func() {
		log.Printf("Server running on %s", addr)
		if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to run server: %v", err)
		}
	}()

	waitForShutdown()
}

func waitForShutdown() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutting down server...")
}
