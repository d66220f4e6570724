package main

import (
	"log"
	"net/http"

	_ "closet/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"closet/internal/auth"
	"closet/internal/authz"
	"closet/internal/cache"
	"closet/internal/config"
	"closet/internal/db"
	"closet/internal/handler"
	"closet/internal/model"
	"closet/internal/repository"
	"closet/internal/router"
	"closet/internal/service"
	"closet/internal/storage"
)

// @title Closet API
// @version 1.0
// @description Wardrobe management API connecting users with personal stylists.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.ClothingItem{},
		&model.ItemEvaluation{},
		&model.Outfit{},
		&model.OutfitClothingItem{},
		&model.PurchaseRecommendation{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	localStorage, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	itemRepo := repository.NewClothingItemRepository(gormDB)
	evalRepo := repository.NewEvaluationRepository(gormDB)
	outfitRepo := repository.NewOutfitRepository(gormDB)
	recRepo := repository.NewRecommendationRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	authorizer := authz.New(userRepo)

	// Services
	authService := service.NewAuthService(userRepo, profileRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, authorizer)
	itemService := service.NewClothingItemService(itemRepo, authorizer)
	evalService := service.NewEvaluationService(evalRepo, itemRepo, authorizer)
	outfitService := service.NewOutfitService(outfitRepo, itemRepo, authorizer)
	recService := service.NewRecommendationService(recRepo, authorizer)
	profileService := service.NewProfileService(profileRepo)
	dashboardService := service.NewDashboardService(userRepo, itemRepo, outfitRepo, recRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewClothingItemHandler(itemService)
	evalHandler := handler.NewEvaluationHandler(evalService)
	outfitHandler := handler.NewOutfitHandler(outfitService)
	recHandler := handler.NewRecommendationHandler(recService)
	profileHandler := handler.NewProfileHandler(profileService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	uploadHandler := handler.NewUploadHandler(localStorage)

	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		itemHandler,
		evalHandler,
		outfitHandler,
		recHandler,
		profileHandler,
		dashboardHandler,
		uploadHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
