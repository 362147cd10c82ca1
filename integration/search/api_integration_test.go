package search_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castsearch/transcripts-api/api"
	"github.com/castsearch/transcripts-api/api/types"
	"github.com/castsearch/transcripts-api/internal/services/corpus"
)

type IntegrationTestSuite struct {
	t       *testing.T
	service *corpus.Service
	router  *gin.Engine
}

func setupIntegrationTestSuite(t *testing.T) *IntegrationTestSuite {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Build a corpus on disk
	corpusDir := t.TempDir()
	writeEpisode(t, corpusDir, "jane-doe-1", "---\nguest: Jane Doe\n---\n\nLenny (00:03:42): Let's talk about prioritization frameworks.\nJane (00:04:10): Sure, ruthless prioritization is everything.")
	writeEpisode(t, corpusDir, "john-roe-2", "John on growth loops and retention. Nothing about frameworks here.")
	writeEpisode(t, corpusDir, "mary-major-3", "---\ntitle: Scaling design teams\n---\n\nMary on scaling design teams and hiring.")

	// Load it through the real service
	service := corpus.NewService(corpusDir)
	require.NoError(t, service.Reload(), "Failed to load test corpus")

	// Setup router with all routes
	router := gin.New()
	router.Use(gin.Recovery())

	deps := &types.Dependencies{
		CorpusService: service,
		MaxResults:    10,
	}

	// Create a minimal rate limiter setup for testing
	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	cleanupInitialized := &sync.Once{}

	// Register routes like the real application
	err := api.RegisterRoutes(router, deps, rateLimiters, cleanupStop, cleanupInitialized)
	require.NoError(t, err, "Failed to register routes")

	return &IntegrationTestSuite{
		t:       t,
		service: service,
		router:  router,
	}
}

func writeEpisode(t *testing.T, corpusDir, folder, content string) {
	t.Helper()
	dir := filepath.Join(corpusDir, folder)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transcript.md"), []byte(content), 0o644))
}

func (suite *IntegrationTestSuite) makeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(suite.t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func TestSearchEndToEnd(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	recorder := suite.makeRequest(http.MethodPost, "/api/v1/search", types.SearchRequest{
		Terms: []string{"prioritization"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response types.TranscriptSearchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Len(t, response.Matches, 1)
	match := response.Matches[0]
	assert.Equal(t, "Jane Doe", match.Guest)
	assert.Contains(t, match.Snippet, "prioritization")
	assert.Equal(t, "00:03:42", match.Timestamp)
}

func TestSearchNoMatches(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	recorder := suite.makeRequest(http.MethodPost, "/api/v1/search", types.SearchRequest{
		Terms: []string{"quantum chromodynamics"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response types.TranscriptSearchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, response.Matches)
	assert.Equal(t, 0, response.Count)
}

func TestSearchValidation(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{
			name: "empty terms rejected",
			body: types.SearchRequest{Terms: []string{}},
			code: http.StatusBadRequest,
		},
		{
			name: "blank terms rejected",
			body: types.SearchRequest{Terms: []string{"  ", ""}},
			code: http.StatusBadRequest,
		},
		{
			name: "limit above cap rejected",
			body: types.SearchRequest{Terms: []string{"growth"}, Limit: 500},
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := suite.makeRequest(http.MethodPost, "/api/v1/search", tt.body)
			assert.Equal(t, tt.code, recorder.Code)
		})
	}
}

func TestEpisodesEndToEnd(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	// List all episodes
	recorder := suite.makeRequest(http.MethodGet, "/api/v1/episodes", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listResponse types.EpisodesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listResponse))
	assert.Equal(t, 3, listResponse.Count)

	// Fetch a single episode by guest name, case-insensitive
	recorder = suite.makeRequest(http.MethodGet, "/api/v1/episodes/jane%20doe", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var singleResponse types.SingleEpisodeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &singleResponse))
	assert.Equal(t, "Jane Doe", singleResponse.Episode.Guest)

	// Guest derived from folder name when frontmatter has no guest key
	recorder = suite.makeRequest(http.MethodGet, "/api/v1/episodes/Mary%20Major", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Unknown guest is a 404
	recorder = suite.makeRequest(http.MethodGet, "/api/v1/episodes/Nobody%20Here", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHealthReportsEpisodeCount(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	recorder := suite.makeRequest(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["episodes"])
}

func TestReloadPicksUpNewEpisodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	corpusDir := t.TempDir()
	writeEpisode(t, corpusDir, "jane-doe-1", "---\nguest: Jane Doe\n---\n\nHello world.")

	service := corpus.NewService(corpusDir)
	require.NoError(t, service.Reload())
	require.Equal(t, 1, service.Count())

	writeEpisode(t, corpusDir, "john-roe-2", "More content here.")
	require.NoError(t, service.Reload())
	assert.Equal(t, 2, service.Count())

	episode, ok := service.EpisodeByGuest("John Roe")
	require.True(t, ok)
	assert.Equal(t, "John Roe", episode.Guest)
}
