package types

import "github.com/castsearch/transcripts-api/internal/services/corpus"

// FromEpisode converts a corpus episode to its full API representation
func FromEpisode(e corpus.Episode) Episode {
	return Episode{
		Guest:   e.Guest,
		Content: e.Content,
		Path:    e.Path,
	}
}

// SummarizeEpisodes converts corpus episodes to content-free summaries
func SummarizeEpisodes(episodes []corpus.Episode) []EpisodeSummary {
	summaries := make([]EpisodeSummary, 0, len(episodes))
	for _, e := range episodes {
		summaries = append(summaries, EpisodeSummary{
			Guest: e.Guest,
			Path:  e.Path,
		})
	}
	return summaries
}

// FromMatches converts corpus search matches to their API representation
func FromMatches(matches []corpus.Match) []TranscriptMatch {
	out := make([]TranscriptMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, TranscriptMatch{
			Guest:     m.Guest,
			Snippet:   m.Snippet,
			Timestamp: m.Timestamp,
			Position:  m.Position,
		})
	}
	return out
}
