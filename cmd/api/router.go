package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchforhandler "github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor/handler"
	userhandler "github.com/samuel-prates/find-my-buddy-api/internal/domains/user/handler"
	"github.com/samuel-prates/find-my-buddy-api/internal/infrastructure/database"
	"github.com/samuel-prates/find-my-buddy-api/internal/shared/middleware"
	"github.com/samuel-prates/find-my-buddy-api/internal/shared/response"
)

// NewRouter assembles the gin engine: shared middleware chain, health
// probe, and the versioned API groups.
func NewRouter(db *database.PostgresDB, users *userhandler.Handler, searchFor *searchforhandler.Handler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			response.ErrorResponse(c, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		userRoutes := v1.Group("/users")
		{
			userRoutes.POST("", users.Create)
			userRoutes.GET("", users.GetAll)
			userRoutes.GET("/:id", users.GetByID)
			userRoutes.PUT("/:id", users.Update)
			userRoutes.DELETE("/:id", users.Delete)
		}

		searchForRoutes := v1.Group("/search-for")
		{
			searchForRoutes.POST("", searchFor.Create)
			searchForRoutes.GET("", searchFor.GetAll)
			searchForRoutes.GET("/by-user/:userId", searchFor.GetByUser)
			searchForRoutes.GET("/by-type/:type", searchFor.GetByType)
			searchForRoutes.GET("/:id", searchFor.GetByID)
			searchForRoutes.PUT("/:id", searchFor.Update)
			searchForRoutes.DELETE("/:id", searchFor.Delete)
		}
	}

	return router
}
