package types

import (
	"github.com/castsearch/transcripts-api/internal/services/corpus"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	CorpusService corpus.CorpusService
	MaxResults    int // default search result cap
}
