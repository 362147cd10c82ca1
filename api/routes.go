package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/castsearch/transcripts-api/api/episodes"
	"github.com/castsearch/transcripts-api/api/health"
	"github.com/castsearch/transcripts-api/api/search"
	"github.com/castsearch/transcripts-api/api/types"
	"github.com/castsearch/transcripts-api/api/version"
	"github.com/castsearch/transcripts-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.NoRoute(NotFoundHandler())

	if deps == nil {
		deps = &types.Dependencies{}
	}

	v1 := engine.Group("/api/v1")
	rateLimitingEnabled := config.GetBool("rate_limiting.enabled")

	// Search is the heaviest endpoint, it scans every transcript
	searchGroup := v1.Group("/search")
	if rateLimitingEnabled {
		searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	}
	search.RegisterRoutes(searchGroup, deps)

	episodeGroup := v1.Group("/episodes")
	if rateLimitingEnabled {
		episodeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	}
	episodes.RegisterRoutes(episodeGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
