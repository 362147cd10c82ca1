package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// EpisodesResponse for episode listings
type EpisodesResponse struct {
	BaseResponse
	Episodes []EpisodeSummary `json:"episodes"`
	Count    int              `json:"count"`
}

// SingleEpisodeResponse for getting a single episode
type SingleEpisodeResponse struct {
	BaseResponse
	Episode *Episode `json:"episode"`
}

// TranscriptSearchResponse for transcript search
type TranscriptSearchResponse struct {
	BaseResponse
	Matches []TranscriptMatch `json:"matches"`
	Terms   []string          `json:"terms"`
	Count   int               `json:"count"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Episodes int `json:"episodes"`
}
