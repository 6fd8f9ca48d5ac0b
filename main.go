package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"disruptive/config"
	"disruptive/database"
	categoryRepoPkg "disruptive/database/repository/category"
	contentRepoPkg "disruptive/database/repository/content"
	userRepoPkg "disruptive/database/repository/user"
	"disruptive/handlers"
	"disruptive/middleware"
	"disruptive/routes"
	"disruptive/schema"
	authSvc "disruptive/services/auth"
	categorySvc "disruptive/services/category"
	contentSvc "disruptive/services/content"
	"disruptive/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	tokens, err := utils.NewTokenManager(config.AppConfig.JWTSecret, time.Duration(config.AppConfig.TokenTTLMinutes)*time.Minute)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize token manager: %v", err)
	}

	// The schema table is built once and shared read-only by every handler.
	schemas := schema.NewValidator()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	catRepo := categoryRepoPkg.NewMongoCategoryRepo()
	contRepo := contentRepoPkg.NewMongoContentRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// Services.
	categoryService := &categorySvc.DefaultCategoryService{
		Repo:        catRepo,
		ContentRepo: contRepo,
		Cache:       utils.GetCacheClient(),
	}
	contentService := &contentSvc.DefaultContentService{
		Repo:       contRepo,
		Categories: categoryService,
	}
	authService := &authSvc.DefaultAuthService{
		Repo:   usrRepo,
		Tokens: tokens,
	}

	// Cover storage is optional; without credentials uploads report 503.
	covers, err := utils.NewCoverStorage()
	if err != nil {
		logger.Sugar().Warnf("main: cover storage disabled: %v", err)
		covers = nil
	}

	authHandler := handlers.NewAuthHandler(authService, schemas)
	categoryHandler := handlers.NewCategoryHandler(categoryService, schemas)
	contentHandler := handlers.NewContentHandler(contentService, schemas)
	storageHandler := handlers.NewStorageHandler(covers)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TokenManager: tokens,

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		VerifyHandler:   authHandler.VerifyHandler,

		ListCategoriesHandler: categoryHandler.ListCategoriesHandler,
		GetCategoryHandler:    categoryHandler.GetCategoryHandler,
		CreateCategoryHandler: categoryHandler.CreateCategoryHandler,
		UpdateCategoryHandler: categoryHandler.UpdateCategoryHandler,
		DeleteCategoryHandler: categoryHandler.DeleteCategoryHandler,

		ListPermissionsHandler: handlers.ListPermissionsHandler,

		ListContentHandler:   contentHandler.ListContentHandler,
		GetContentHandler:    contentHandler.GetContentHandler,
		CreateContentHandler: contentHandler.CreateContentHandler,
		UpdateContentHandler: contentHandler.UpdateContentHandler,
		DeleteContentHandler: contentHandler.DeleteContentHandler,

		UploadCoverHandler: storageHandler.UploadCoverHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
