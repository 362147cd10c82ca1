package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castsearch/transcripts-api/internal/services/corpus"
	"github.com/castsearch/transcripts-api/pkg/config"
	"github.com/castsearch/transcripts-api/pkg/download"
)

var bootstrapDir string

// bootstrapCmd represents the bootstrap command
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Download and extract the transcript corpus",
	Long: `Ensure the transcript corpus is present on disk.

If the target directory already contains a populated corpus this command
does nothing. Otherwise it downloads the configured archive, extracts
the episode folders into the target directory, and verifies the result.

Example:
  transcripts-api bootstrap
  transcripts-api bootstrap --dir ./tmp/episodes`,
	RunE: runBootstrap,
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)

	bootstrapCmd.Flags().StringVar(&bootstrapDir, "dir", "", "target corpus directory (overrides config)")
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	targetDir := bootstrapDir
	if targetDir == "" {
		targetDir = cfg.Corpus.HostedPath
	}

	if err := newCorpusBootstrapper(cfg).Ensure(cmd.Context(), targetDir); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	fmt.Printf("Corpus ready at %s\n", targetDir)
	return nil
}

// newCorpusBootstrapper builds a bootstrapper from the loaded configuration
func newCorpusBootstrapper(cfg *config.Config) *corpus.Bootstrapper {
	options := download.DefaultOptions()
	options.TempDir = cfg.Storage.TempDir
	if cfg.Download.Timeout > 0 {
		options.Timeout = cfg.Download.Timeout
	}
	if cfg.Download.UserAgent != "" {
		options.UserAgent = cfg.Download.UserAgent
	}

	return corpus.NewBootstrapper(corpus.BootstrapConfig{
		ArchiveURL:  cfg.Corpus.ArchiveURL,
		ArchiveRoot: cfg.Corpus.ArchiveRoot,
		TempDir:     cfg.Storage.TempDir,
		Downloader:  download.NewDownloader(options),
	})
}
