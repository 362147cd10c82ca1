package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/castsearch/transcripts-api/api"
	"github.com/castsearch/transcripts-api/api/types"
	"github.com/castsearch/transcripts-api/internal/services/corpus"
	"github.com/castsearch/transcripts-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podcast Transcripts API server with the configured settings.

When corpus.mode is "hosted" the server first ensures the transcript
corpus is present, downloading and extracting the archive if needed.
The corpus is then loaded into memory and served over HTTP.

Example:
  transcripts-api serve
  transcripts-api serve --port 9090
  transcripts-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	corpusDir := cfg.Corpus.Dir()

	// Hosted mode fetches the corpus archive before serving
	if cfg.Corpus.Mode == "hosted" {
		if err := newCorpusBootstrapper(cfg).Ensure(cmd.Context(), corpusDir); err != nil {
			return fmt.Errorf("failed to bootstrap corpus: %w", err)
		}
	}

	// Load the corpus into memory
	service := corpus.NewService(corpusDir, corpus.WithSnippetLength(cfg.Search.SnippetLength))
	if err := service.Reload(); err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"episodes": service.Count(),
		"path":     corpusDir,
	}).Info("Corpus loaded")

	// Create and initialize the API server
	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(&types.Dependencies{
		CorpusService: service,
		MaxResults:    cfg.Search.MaxResults,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	logrus.WithField("address", address).Info("Server is ready to handle requests")

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	// Create a context with timeout for shutdown
	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
