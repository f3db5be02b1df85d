package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"irms.fjp.io/irms/internal/api/handlers"
	"irms.fjp.io/irms/internal/api/middleware"
	"irms.fjp.io/irms/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/health/",
	"/uploads/",
}

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	router.Use(jwtSkipPublic(jwtCfg))

	// Uploaded CVs are served as static files.
	router.Static("/uploads/cvs", cfg.Uploads.Dir)

	v1 := router.Group("/api/v1")

	health := v1.Group("/health")
	health.GET("/live", server.Liveness)
	health.GET("/ready", server.Readiness)

	auth := v1.Group("/auth")
	auth.POST("/login", server.Login)
	auth.POST("/logout", server.Logout)
	auth.GET("/me", server.GetCurrentUser)
	auth.PUT("/password", server.UpdatePassword)

	resources := v1.Group("/resources")
	resources.GET("", server.ListResources)
	resources.GET("/:id", server.GetResource)
	resources.POST("", middleware.RequireRoles("Admin", "RA"), server.CreateResource)
	resources.PUT("/:id", middleware.RequireRoles("Admin", "RA"), server.UpdateResource)
	resources.DELETE("/:id", middleware.RequireRoles("Admin"), server.DeleteResource)
	resources.POST("/:id/cv", middleware.RequireRoles("Admin", "RA"), server.UploadCV)

	hist := v1.Group("/history")
	hist.GET("", middleware.RequireRoles("Admin", "RA", "Manager"), server.ListHistory)
	hist.GET("/resource/:id", server.ListResourceHistory)

	reports := v1.Group("/reports")
	reports.GET("/overview", server.GetOverviewReport)
	reports.GET("/department", server.GetDepartmentReport)
	reports.GET("/skills", server.GetSkillsReport)
	reports.GET("/trends", server.GetTrendsReport)
	reports.POST("/export", middleware.RequireRoles("Admin", "RA", "Manager"), server.ExportReport)

	users := v1.Group("/users")
	users.GET("", middleware.RequireRoles("Admin", "RA", "Manager"), server.ListUsers)
	users.GET("/:id", middleware.RequireRoles("Admin", "RA", "Manager"), server.GetUser)
	users.POST("", middleware.RequireRoles("Admin"), server.CreateUser)
	users.PUT("/:id", middleware.RequireRoles("Admin"), server.UpdateUser)
	users.DELETE("/:id", middleware.RequireRoles("Admin"), server.DeleteUser)
	users.PUT("/:id/toggle-status", middleware.RequireRoles("Admin"), server.ToggleUserStatus)

	return router
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(jwtCfg middleware.JWTConfig) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(jwtCfg)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
