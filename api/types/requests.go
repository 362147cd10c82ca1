package types

// SearchRequest is the body of a transcript search call
type SearchRequest struct {
	Terms []string `json:"terms"`           // tried independently; earliest match wins
	Limit int      `json:"limit,omitempty"` // max results, defaults server-side
}
