package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/castsearch/transcripts-api/pkg/archive"
	"github.com/castsearch/transcripts-api/pkg/download"
	apperrors "github.com/castsearch/transcripts-api/pkg/errors"
)

const (
	// presentThreshold is the subdirectory count above which the corpus
	// is treated as already present
	presentThreshold = 100

	// minEpisodes is the post-extraction validation floor; the archive is
	// known to contain several hundred episodes
	minEpisodes = 50

	// episodesSubpath is the fixed location of the episode tree inside
	// the extracted archive root
	episodesSubpath = "episodes"
)

// BootstrapConfig configures a Bootstrapper
type BootstrapConfig struct {
	ArchiveURL  string
	ArchiveRoot string
	TempDir     string
	Downloader  ArchiveDownloader
	Extractor   archive.Extractor
}

// Bootstrapper populates a local corpus directory from the remote archive
type Bootstrapper struct {
	archiveURL  string
	archiveRoot string
	tempDir     string
	downloader  ArchiveDownloader
	extractor   archive.Extractor
}

// NewBootstrapper creates a bootstrapper, filling in default download and
// extraction implementations when not provided
func NewBootstrapper(cfg BootstrapConfig) *Bootstrapper {
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.Downloader == nil {
		options := download.DefaultOptions()
		options.TempDir = cfg.TempDir
		cfg.Downloader = download.NewDownloader(options)
	}
	if cfg.Extractor == nil {
		cfg.Extractor = archive.NewZipExtractor()
	}

	return &Bootstrapper{
		archiveURL:  cfg.ArchiveURL,
		archiveRoot: cfg.ArchiveRoot,
		tempDir:     cfg.TempDir,
		downloader:  cfg.Downloader,
		extractor:   cfg.Extractor,
	}
}

// Ensure makes sure targetDir holds the transcript corpus, downloading and
// extracting the remote archive when it is absent or sparse. Idempotent on
// success: a populated directory short-circuits before any network
// activity. A failed run must be retried by the caller; a partial copy that
// lands between minEpisodes and presentThreshold is re-fetched on the next
// run. Only one bootstrap should run at a time per machine.
func (b *Bootstrapper) Ensure(ctx context.Context, targetDir string) error {
	if count, err := countSubdirs(targetDir); err == nil && count > presentThreshold {
		logrus.WithFields(logrus.Fields{"path": targetDir, "episodes": count}).Info("corpus already present, skipping bootstrap")
		return nil
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return b.fail(apperrors.Wrapf(err, apperrors.ErrCodeInternal, "failed to create corpus directory %s", targetDir))
	}

	logrus.WithField("url", b.archiveURL).Info("fetching corpus archive")

	result, err := b.downloader.DownloadToTemp(ctx, b.archiveURL, "corpus_*.zip")
	if err != nil {
		return b.fail(apperrors.DownloadError(b.archiveURL, err))
	}
	defer func() {
		_ = download.CleanupTempFile(result.FilePath)
	}()

	extractDir := filepath.Join(b.tempDir, "corpus-extract")
	if err := os.RemoveAll(extractDir); err != nil {
		return b.fail(apperrors.Wrapf(err, apperrors.ErrCodeInternal, "failed to clear extraction directory %s", extractDir))
	}
	defer func() {
		_ = os.RemoveAll(extractDir)
	}()

	if err := b.extractor.Extract(result.FilePath, extractDir); err != nil {
		return b.fail(apperrors.ExtractError(result.FilePath, err))
	}

	episodesDir := filepath.Join(extractDir, b.archiveRoot, episodesSubpath)
	if err := copyChildren(episodesDir, targetDir); err != nil {
		return b.fail(apperrors.Wrap(err, apperrors.ErrCodeExtractFailed, "failed to copy episodes into corpus directory"))
	}

	count, err := countSubdirs(targetDir)
	if err != nil {
		return b.fail(apperrors.Wrapf(err, apperrors.ErrCodeCorpusUnreadable, "failed to list corpus directory %s", targetDir))
	}
	if count < minEpisodes {
		return b.fail(apperrors.CorpusShortfall(count, minEpisodes))
	}

	logrus.WithFields(logrus.Fields{"path": targetDir, "episodes": count}).Info("corpus bootstrap complete")
	return nil
}

// fail logs a bootstrap error before propagating it
func (b *Bootstrapper) fail(err error) error {
	logrus.WithError(err).Error("corpus bootstrap failed")
	return err
}

// countSubdirs counts the immediate subdirectories of dir
func countSubdirs(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			count++
		}
	}
	return count, nil
}

// copyChildren copies every entry of srcDir into destDir
func copyChildren(srcDir, destDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		src := filepath.Join(srcDir, entry.Name())
		dest := filepath.Join(destDir, entry.Name())
		if err := copyTree(src, dest); err != nil {
			return err
		}
	}
	return nil
}

// copyTree recursively copies a file or directory
func copyTree(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if info.IsDir() {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return err
		}
		entries, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := copyTree(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	}

	return copyFile(src, dest, info.Mode())
}

// copyFile copies a single regular file
func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
