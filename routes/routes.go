package routes

import (
	"net/http"
	"time"

	"disruptive/config"
	"disruptive/handlers"
	"disruptive/middleware"
	"disruptive/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", hb.RegisterHandler)
		auth.POST("/login", hb.LoginHandler)

		auth.GET("/verify", middleware.JWTAuthMiddleware(hb.TokenManager), hb.VerifyHandler)
	}
}

// RegisterCategoryRoutes registers the admin-only category endpoints.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/categories")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TokenManager))
		api.Use(middleware.RequireRole(models.AdminOnly))
		api.GET("", hb.ListCategoriesHandler)
		api.GET("/:id", hb.GetCategoryHandler)
		api.POST("", hb.CreateCategoryHandler)
		api.PUT("/:id", hb.UpdateCategoryHandler)
		api.DELETE("/:id", hb.DeleteCategoryHandler)
	}
}

// RegisterPermissionRoutes registers the permission vocabulary endpoint.
func RegisterPermissionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/permissions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TokenManager))
		api.GET("", hb.ListPermissionsHandler)
	}
}

// RegisterContentRoutes registers the content endpoints. Reads admit every
// authenticated identity; mutations additionally require a non-reader role.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TokenManager))
		api.GET("", hb.ListContentHandler)
		api.GET("/:id", hb.GetContentHandler)

		mutate := api.Group("")
		mutate.Use(middleware.RequireRole(models.NotReader))
		mutate.POST("", hb.CreateContentHandler)
		mutate.PUT("/:id", hb.UpdateContentHandler)
		mutate.DELETE("/:id", hb.DeleteContentHandler)
	}
}

// RegisterStorageRoutes registers the admin-only cover upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TokenManager))
		api.Use(middleware.RequireRole(models.AdminOnly))
		api.POST("/covers", hb.UploadCoverHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCategoryRoutes(r, hb)
	RegisterPermissionRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
