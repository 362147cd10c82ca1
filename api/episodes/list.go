package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castsearch/transcripts-api/api/types"
)

// List handles episode listing requests
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.CorpusService == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Corpus not loaded",
			})
			return
		}

		summaries := types.SummarizeEpisodes(deps.CorpusService.Episodes())

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Episodes retrieved successfully",
			},
			Episodes: summaries,
			Count:    len(summaries),
		})
	}
}
