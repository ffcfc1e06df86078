package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "careervector/docs" // swagger docs

	"careervector/internal/auth"
	"careervector/internal/cache"
	"careervector/internal/config"
	"careervector/internal/db"
	"careervector/internal/handler"
	"careervector/internal/mailer"
	"careervector/internal/model"
	"careervector/internal/repository"
	"careervector/internal/router"
	"careervector/internal/service"
	"careervector/internal/storage"
)

// @title CareerVector API
// @version 1.0
// @description Campus recruitment backend with OTP-verified signup, login, password reset, and profile asset upload.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Student{},
		&model.Recruiter{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		cancel()
		// pending verification codes live only in redis, so this is fatal
		log.Fatalf("redis init: %v", err)
	}
	cancel()

	mail, err := mailer.New(cfg)
	if err != nil {
		log.Fatalf("mailer init: %v", err)
	}
	uploads, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(gormDB)
	recruiterRepo := repository.NewRecruiterRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	otpStore := auth.NewOTPStore(cacheClient)

	// Initialize services
	studentService := service.NewStudentService(studentRepo, otpStore, mail, uploads)
	recruiterService := service.NewRecruiterService(recruiterRepo, otpStore, mail, uploads)

	// Initialize handlers
	studentHandler := handler.NewStudentHandler(studentService, jwtService)
	recruiterHandler := handler.NewRecruiterHandler(recruiterService, jwtService)

	// Register routes
	router.Register(e, cfg, studentHandler, recruiterHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
