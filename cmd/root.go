package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/castsearch/transcripts-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcripts-api",
	Short: "Podcast transcripts search API server",
	Long: `Podcast Transcripts API - search over a corpus of podcast transcripts

The corpus is a directory of episode folders, one transcript.md per
episode. The server loads every transcript into memory, derives a guest
name from each, and serves keyword search with context snippets.

Features:
  • One-time corpus bootstrap from a remote archive
  • Guest name extraction from transcript frontmatter
  • Keyword search with snippet and timestamp extraction`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	setupLogging()
}

// setupLogging applies the configured log level and format
func setupLogging() {
	if level, err := logrus.ParseLevel(config.GetString("logging.level")); err == nil {
		logrus.SetLevel(level)
	}
	if config.GetString("logging.format") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
