package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/castsearch/transcripts-api/api/types"
)

// Get handles health check requests
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.CorpusService != nil {
			response["episodes"] = deps.CorpusService.Count()
		} else {
			response["episodes"] = 0
		}

		c.JSON(http.StatusOK, response)
	}
}
