// Package api wires handlers into the gin router.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/razorspoint/timeline-backend-go/internal/handler"
	"github.com/razorspoint/timeline-backend-go/internal/middleware"
)

// SetupRouter builds the gin engine with all routes registered
func SetupRouter(locations *handler.LocationHandler, analysis *handler.AnalysisHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Timeline Backend API is running",
		})
	})

	// an analysis run calls out to the routing backend, keep it
	// behind a limiter
	analysisLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := r.Group("/api/v1")
	{
		locs := api.Group("/locations")
		{
			locs.GET("", locations.List)
			locs.POST("", locations.Create)
			locs.GET("/:id", locations.Get)
			locs.PUT("/:id", locations.Update)
			locs.DELETE("/:id", locations.Delete)
		}

		runs := api.Group("/analysis")
		{
			runs.POST("", analysisLimiter.Middleware(), analysis.Create)
			runs.GET("", analysis.List)
			runs.GET("/:id", analysis.Get)
			runs.GET("/:id/export", analysis.ExportCSV)
		}
	}

	return r
}
