package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "markbook/docs" // swagger docs

	"markbook/internal/auth"
	"markbook/internal/cache"
	"markbook/internal/config"
	"markbook/internal/db"
	"markbook/internal/handler"
	"markbook/internal/model"
	"markbook/internal/repository"
	"markbook/internal/router"
	"markbook/internal/service"
)

// @title Markbook API
// @version 1.0
// @description Role-based academic records portal with JWT authentication: students read their own marks and comments, faculty manage their assigned course, admins manage accounts.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set; login and protected routes will fail")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Mark{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	markRepo := repository.NewMarkRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	adminService := service.NewAdminService(userRepo, markRepo, courseRepo, cacheClient)
	facultyService := service.NewFacultyService(userRepo, markRepo, commentRepo, cacheClient)
	studentService := service.NewStudentService(markRepo, commentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	facultyHandler := handler.NewFacultyHandler(facultyService)
	studentHandler := handler.NewStudentHandler(studentService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		adminHandler,
		facultyHandler,
		studentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
