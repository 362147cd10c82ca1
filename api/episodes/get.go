package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castsearch/transcripts-api/api/types"
)

// Get handles single-episode requests by guest name
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		guest := c.Param("guest")
		if guest == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Guest name is required",
			})
			return
		}

		if deps.CorpusService == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Corpus not loaded",
			})
			return
		}

		episode, ok := deps.CorpusService.EpisodeByGuest(guest)
		if !ok {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Episode not found",
				Details: gin.H{"guest": guest},
			})
			return
		}

		dto := types.FromEpisode(*episode)
		c.JSON(http.StatusOK, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Episode retrieved successfully",
			},
			Episode: &dto,
		})
	}
}
