package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/castsearch/transcripts-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// Router already includes the /episodes prefix
	router.GET("", List(deps))
	router.GET("/:guest", Get(deps))
}
