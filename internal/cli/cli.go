// Package cli implements the protoboard command-line interface.
//
// This package provides commands for decoding and encoding component
// markings, generating prototyping-board layouts from bill-of-materials
// files, browsing the diode part database, and serving the HTTP API. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - decode: Decode a resistor band sequence, capacitor marking, or diode part number
//   - encode: Encode a component value back into bands or a marking
//   - layout: Place a BOM onto a breadboard or stripboard and render artifacts
//   - parts: List the known diode and LED parts
//   - serve: Run the HTTP API server
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/protolab/protoboard/pkg/buildinfo"
	"github.com/protolab/protoboard/pkg/cache"
	"github.com/protolab/protoboard/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "protoboard"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "protoboard",
		Short:        "Protoboard turns a BOM into a prototyping-board layout",
		Long:         `Protoboard decodes electronic component markings, places bill-of-materials entries onto breadboards and stripboards, and renders the resulting layout as connectivity diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.partsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. With redisAddr set the
// runner caches in Redis, otherwise in the local file cache; noCache
// disables caching entirely. A non-empty profile scopes cache keys so a
// custom board profile never collides with the default namespace.
func (c *CLI) newRunner(cmd *cobra.Command, noCache bool, redisAddr, profile string) (*pipeline.Runner, error) {
	store, err := c.newCache(cmd, noCache, redisAddr)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if profile != "" {
		keyer = cache.NewScopedKeyer(nil, "profile:"+profile+":")
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(cmd *cobra.Command, noCache bool, redisAddr string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		var store cache.Cache
		err := cache.RetryWithBackoff(cmd.Context(), func() error {
			var err error
			store, err = cache.NewRedisCache(cmd.Context(), redisAddr, "", 0)
			return cache.Retryable(err)
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/protoboard/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the config file path using XDG standard
// (~/.config/protoboard/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
