package main

import (
	"log"
	"net/http"
	"os"

	_ "reservabar/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"reservabar/internal/auth"
	"reservabar/internal/cache"
	"reservabar/internal/config"
	"reservabar/internal/db"
	"reservabar/internal/handler"
	"reservabar/internal/model"
	"reservabar/internal/repository"
	"reservabar/internal/router"
	"reservabar/internal/service"
)

// @title Bar Reservation API
// @version 1.0
// @description CRUD backend for a bar: users, tables, reservations and promotions with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Reservation{},
			&model.Promotion{},
			&model.Table{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Table{},
		&model.Reservation{},
		&model.Promotion{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tableRepo := repository.NewTableRepository(gormDB)
	reservationRepo := repository.NewReservationRepository(gormDB)
	promotionRepo := repository.NewPromotionRepository(gormDB)

	// Auth core
	tokenService, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL())
	if err != nil {
		log.Fatalf("token service init: %v", err)
	}
	resolver := auth.NewSessionResolver(tokenService, userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, cacheClient)
	tableService := service.NewTableService(tableRepo, cacheClient)
	reservationService := service.NewReservationService(reservationRepo, tableRepo)
	promotionService := service.NewPromotionService(promotionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tableHandler := handler.NewTableHandler(tableService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	promotionHandler := handler.NewPromotionHandler(promotionService)

	// Register routes
	router.Register(
		e,
		cfg,
		resolver,
		authHandler,
		userHandler,
		tableHandler,
		reservationHandler,
		promotionHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
