package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// DownloadOptions configures the download behavior
type DownloadOptions struct {
	TempDir      string        // Directory for temporary files
	MaxSize      int64         // Maximum file size in bytes (0 = no limit)
	Timeout      time.Duration // Download timeout
	ProgressFunc ProgressFunc  // Optional progress callback
	UserAgent    string        // User agent string
	ValidateZip  bool          // Validate content-type is a zip archive
}

// ProgressFunc is called during download to report progress
type ProgressFunc func(downloaded, total int64)

// DefaultOptions returns default download options
func DefaultOptions() DownloadOptions {
	return DownloadOptions{
		TempDir:      os.TempDir(),
		MaxSize:      2 * 1024 * 1024 * 1024, // 2GB default max
		Timeout:      10 * time.Minute,
		UserAgent:    "TranscriptsAPI/1.0",
		ValidateZip:  false,
		ProgressFunc: NewMegabyteLogger(),
	}
}

// NewMegabyteLogger returns a ProgressFunc that logs each time another
// megabyte has been transferred. Informational only.
func NewMegabyteLogger() ProgressFunc {
	const mb = 1024 * 1024
	var lastMB int64 = -1
	return func(downloaded, total int64) {
		if downloaded/mb == lastMB {
			return
		}
		lastMB = downloaded / mb
		if total > 0 {
			logrus.Infof("downloaded %d/%d MB", lastMB, total/mb)
		} else {
			logrus.Infof("downloaded %d MB", lastMB)
		}
	}
}

// DownloadResult contains information about a successful download
type DownloadResult struct {
	FilePath      string // Path to downloaded file
	ContentType   string // Content-Type from response
	ContentLength int64  // Size in bytes
}

// Downloader handles downloading archive files to temporary storage
type Downloader struct {
	client  *http.Client
	options DownloadOptions
}

// NewDownloader creates a new downloader with the given options.
// Redirects are followed by the underlying client.
func NewDownloader(options DownloadOptions) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

// DownloadToTemp downloads a URL to a temporary file
func (d *Downloader) DownloadToTemp(ctx context.Context, url string, pattern string) (*DownloadResult, error) {
	logrus.WithField("url", url).Debug("starting archive download")

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", d.options.UserAgent)
	req.Header.Set("Accept", "application/zip,*/*")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if d.options.ValidateZip && !isZipContentType(contentType) {
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}

	contentLength := resp.ContentLength
	if d.options.MaxSize > 0 && contentLength > d.options.MaxSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", contentLength, d.options.MaxSize)
	}

	tempFile, err := os.CreateTemp(d.options.TempDir, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := d.downloadToFile(resp.Body, tempFile, contentLength)
	tempPath := tempFile.Name()
	tempFile.Close()

	if err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("failed to download: %w", err)
	}

	logrus.WithFields(logrus.Fields{"bytes": written, "path": tempPath}).Debug("archive download complete")

	return &DownloadResult{
		FilePath:      tempPath,
		ContentType:   contentType,
		ContentLength: written,
	}, nil
}

// downloadToFile downloads response body to file with optional progress tracking
func (d *Downloader) downloadToFile(src io.Reader, dst *os.File, totalSize int64) (int64, error) {
	reader := src
	if d.options.ProgressFunc != nil {
		reader = &progressReader{
			reader:   src,
			total:    totalSize,
			callback: d.options.ProgressFunc,
		}
	}

	if d.options.MaxSize > 0 {
		reader = &io.LimitedReader{
			R: reader,
			N: d.options.MaxSize,
		}
	}

	return io.Copy(dst, reader)
}

// CleanupTempFile removes a temporary file, tolerating already-missing paths
func CleanupTempFile(path string) error {
	if path == "" {
		return nil
	}

	logrus.WithField("path", path).Debug("cleaning up temp file")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// isZipContentType checks if the content type is a zip archive
func isZipContentType(contentType string) bool {
	switch contentType {
	case "application/zip", "application/x-zip-compressed", "application/octet-stream":
		return true
	}
	return false
}

// progressReader wraps a reader to report progress
type progressReader struct {
	reader     io.Reader
	total      int64
	downloaded int64
	callback   ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.downloaded += int64(n)
		if pr.callback != nil {
			pr.callback(pr.downloaded, pr.total)
		}
	}
	return n, err
}
