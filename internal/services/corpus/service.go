package corpus

import (
	"sort"
	"strings"
	"sync"

	"github.com/castsearch/transcripts-api/pkg/transcript"
)

// Service holds the loaded corpus in memory for the process lifetime
type Service struct {
	mu            sync.RWMutex
	corpusDir     string
	episodes      []Episode
	snippetLength int
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithSnippetLength sets the excerpt window size for search results
func WithSnippetLength(length int) ServiceOption {
	return func(s *Service) {
		if length > 0 {
			s.snippetLength = length
		}
	}
}

// NewService creates a corpus service over the given directory. The corpus
// is not read until Reload is called.
func NewService(corpusDir string, opts ...ServiceOption) *Service {
	s := &Service{
		corpusDir:     corpusDir,
		snippetLength: transcript.DefaultSnippetLength,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Reload re-reads the corpus directory and swaps the episode list
func (s *Service) Reload() error {
	episodes, err := Load(s.corpusDir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.episodes = episodes
	s.mu.Unlock()

	return nil
}

// Episodes returns the loaded episode list
func (s *Service) Episodes() []Episode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.episodes
}

// Count returns the number of loaded episodes
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.episodes)
}

// EpisodeByGuest returns the first episode whose guest matches name,
// case-insensitively. Guest names are not guaranteed unique.
func (s *Service) EpisodeByGuest(name string) (*Episode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.episodes {
		if strings.EqualFold(s.episodes[i].Guest, name) {
			episode := s.episodes[i]
			return &episode, true
		}
	}
	return nil, false
}

// Search scans every episode for the earliest occurrence of any term and
// returns snippet matches ordered by match position. There is no relevance
// scoring beyond first-match position.
func (s *Service) Search(terms []string, limit int) []Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Match{}
	for i := range s.episodes {
		episode := &s.episodes[i]

		position := transcript.MatchPosition(episode.Content, terms)
		if position < 0 {
			continue
		}

		snippet := transcript.ExtractSnippet(episode.Content, terms, s.snippetLength)
		timestamp, _ := transcript.ExtractTimestamp(snippet)

		matches = append(matches, Match{
			Guest:     episode.Guest,
			Path:      episode.Path,
			Snippet:   snippet,
			Timestamp: timestamp,
			Position:  position,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Position < matches[j].Position
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}
