package search

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/castsearch/transcripts-api/api/types"
)

// DefaultMaxResults caps search responses when no limit is requested
const DefaultMaxResults = 10

// Post handles transcript search requests
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		terms := make([]string, 0, len(req.Terms))
		for _, term := range req.Terms {
			if t := strings.TrimSpace(term); t != "" {
				terms = append(terms, t)
			}
		}

		if len(terms) == 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "At least one search term is required",
			})
			return
		}

		if req.Limit == 0 {
			req.Limit = deps.MaxResults
			if req.Limit == 0 {
				req.Limit = DefaultMaxResults
			}
		}

		if req.Limit < 1 || req.Limit > 100 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Limit must be between 1 and 100",
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

		matches := types.FromMatches(deps.CorpusService.Search(terms, req.Limit))

		c.JSON(http.StatusOK, types.TranscriptSearchResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search results retrieved successfully",
			},
			Matches: matches,
			Terms:   terms,
			Count:   len(matches),
		})
	}
}
