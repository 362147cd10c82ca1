package types

// Core data types used across API responses

// Episode represents a loaded transcript with its full body
type Episode struct {
	Guest   string `json:"guest"`
	Content string `json:"content"`
	Path    string `json:"path"`
}

// EpisodeSummary represents an episode without its body, for listings
type EpisodeSummary struct {
	Guest string `json:"guest"`
	Path  string `json:"path"`
}

// TranscriptMatch represents one search hit with its context snippet
type TranscriptMatch struct {
	Guest     string `json:"guest"`
	Snippet   string `json:"snippet"`
	Timestamp string `json:"timestamp,omitempty"` // HH:MM:SS when the snippet carries one
	Position  int    `json:"position"`            // offset of the earliest term match
}
