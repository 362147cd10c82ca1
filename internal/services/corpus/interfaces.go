package corpus

import (
	"context"

	"github.com/castsearch/transcripts-api/pkg/download"
)

// CorpusService defines read operations over the loaded corpus
type CorpusService interface {
	// Episodes returns the loaded episode list
	Episodes() []Episode

	// Count returns the number of loaded episodes
	Count() int

	// EpisodeByGuest returns the first episode whose guest matches name,
	// case-insensitively
	EpisodeByGuest(name string) (*Episode, bool)

	// Search returns snippet matches ordered by earliest match position
	Search(terms []string, limit int) []Match

	// Reload re-reads the corpus directory and swaps the episode list
	Reload() error
}

// ArchiveDownloader defines the interface for fetching the corpus archive
type ArchiveDownloader interface {
	DownloadToTemp(ctx context.Context, url string, pattern string) (*download.DownloadResult, error)
}
