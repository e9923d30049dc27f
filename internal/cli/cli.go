// Package cli implements the floorplan command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "floorplan"

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

	// Config is loaded before every command runs.
	Config *config.Config

	out     io.Writer
	logFile io.Closer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.DefaultConfig(),
		out:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close flushes and closes the log file, if any.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath, logFile string

	root := &cobra.Command{
		Use:   appName,
		Short: "Floorplan turns a short description of a space into a floor plan",
		Long: `Floorplan turns a short free-text description of a space, such as
"a clinic with 2 exam rooms and a waiting area", into a deterministic 2D layout:
rooms on both sides of a central corridor, exterior walls and one entrance.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(configPath); err != nil {
				return err
			}
			if logFile != "" {
				c.Config.Log.File = logFile
			}
			return c.attachLogFile(c.Config.Log)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default: ./floorplan.toml or the user config dir)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file, rotated by size")

	root.AddCommand(c.planCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads path, or the first settings file found in the search
// directories when path is empty.
func (c *CLI) loadConfig(path string) error {
	if path == "" {
		path = config.Find(config.SearchDirs()...)
	}
	if path == "" {
		c.Config = config.DefaultConfig()
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded settings", "path", path)
	c.Config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, cache.Cache, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), store, nil
}

// newCache opens the configured backend. An unreachable redis falls back to
// the file cache so a plan can still be produced.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cc := c.Config.Cache
	if noCache || cc.Backend == config.BackendNone {
		return cache.NewNullCache(), nil
	}

	if cc.Backend == config.BackendRedis {
		spinner := newSpinner(ctx, os.Stderr, "Connecting to redis...")
		spinner.Start()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: cc.RedisURL, Prefix: cc.Prefix})
		spinner.Stop()
		if err == nil {
			return rc, nil
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "error", err)
	}

	dir := cc.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/floorplan/).
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
