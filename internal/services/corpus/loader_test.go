package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/castsearch/transcripts-api/pkg/errors"
)

// writeTranscript creates an episode folder with a transcript.md file
func writeTranscript(t *testing.T, corpusDir, folder, content string) {
	t.Helper()
	dir := filepath.Join(corpusDir, folder)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TranscriptFileName), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	corpusDir := t.TempDir()

	writeTranscript(t, corpusDir, "jane-doe-1", "---\nguest: Jane Doe\n---\nHello world")

	// Administrative folder without a transcript must be skipped silently
	require.NoError(t, os.MkdirAll(filepath.Join(corpusDir, "scripts"), 0o755))

	episodes, err := Load(corpusDir)
	require.NoError(t, err)
	require.Len(t, episodes, 1)

	assert.Equal(t, "Jane Doe", episodes[0].Guest)
	assert.Equal(t, "Hello world", episodes[0].Content)
	assert.Equal(t, filepath.Join(corpusDir, "jane-doe-1", TranscriptFileName), episodes[0].Path)
}

func TestLoad_GuestFallbackFromFolder(t *testing.T) {
	corpusDir := t.TempDir()

	writeTranscript(t, corpusDir, "john-roe-17", "No metadata in this one.")

	episodes, err := Load(corpusDir)
	require.NoError(t, err)
	require.Len(t, episodes, 1)

	assert.Equal(t, "John Roe", episodes[0].Guest)
	assert.Equal(t, "No metadata in this one.", episodes[0].Content)
}

func TestLoad_BlockWithoutGuestFallsBack(t *testing.T) {
	corpusDir := t.TempDir()

	writeTranscript(t, corpusDir, "mary-major-3", "---\ntitle: Episode three\n---\nBody only")

	episodes, err := Load(corpusDir)
	require.NoError(t, err)
	require.Len(t, episodes, 1)

	// Guest derived from folder, but metadata block still stripped
	assert.Equal(t, "Mary Major", episodes[0].Guest)
	assert.Equal(t, "Body only", episodes[0].Content)
}

func TestLoad_IgnoresPlainFiles(t *testing.T) {
	corpusDir := t.TempDir()

	writeTranscript(t, corpusDir, "jane-doe-1", "guest text")
	require.NoError(t, os.WriteFile(filepath.Join(corpusDir, "README.md"), []byte("readme"), 0o644))

	episodes, err := Load(corpusDir)
	require.NoError(t, err)
	assert.Len(t, episodes, 1)
}

func TestLoad_MissingCorpusDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCorpusUnreadable))
}

func TestLoad_EmptyCorpusDir(t *testing.T) {
	episodes, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, episodes)
}
