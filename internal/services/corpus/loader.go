// Package corpus loads a directory of podcast transcript folders into
// memory and bootstraps the directory from a remote archive when absent.
package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"

	apperrors "github.com/castsearch/transcripts-api/pkg/errors"
	"github.com/castsearch/transcripts-api/pkg/transcript"
)

// TranscriptFileName is the per-episode transcript file
const TranscriptFileName = "transcript.md"

// Load walks the immediate subdirectories of corpusPath and returns one
// Episode per readable transcript file. Subdirectories without a readable
// transcript are skipped; administrative and version-control folders are
// expected alongside episodes. Failure to list corpusPath itself is fatal.
func Load(corpusPath string) ([]Episode, error) {
	entries, err := os.ReadDir(corpusPath)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeCorpusUnreadable, "failed to list corpus directory %s", corpusPath)
	}

	episodes := make([]Episode, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(corpusPath, entry.Name(), TranscriptFileName)
		raw, err := os.ReadFile(path)
		if err != nil {
			if isIgnorableReadError(err) {
				logrus.WithField("dir", entry.Name()).Debug("skipping directory without transcript")
			} else {
				logrus.WithError(err).WithField("path", path).Warn("skipping unreadable transcript")
			}
			continue
		}

		meta, body := transcript.ParseFrontmatter(string(raw))
		guest := meta.Guest
		if guest == "" {
			guest = transcript.GuestFromFolder(entry.Name())
		}

		episodes = append(episodes, Episode{
			Guest:   guest,
			Content: body,
			Path:    path,
		})
	}

	logrus.WithFields(logrus.Fields{
		"episodes":    len(episodes),
		"directories": len(entries),
		"path":        corpusPath,
	}).Info("corpus loaded")

	return episodes, nil
}

// isIgnorableReadError reports whether a per-episode read failure belongs
// to the expected classes for non-episode entries
func isIgnorableReadError(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
