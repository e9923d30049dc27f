// Package config loads floorplan.toml / floorplan.yaml settings files.
//
// A config file sets plan defaults, the cache backend, log rotation and
// extra catalog rooms. Command-line flags override whatever it sets.
//
//	[plan]
//	corridor_width = 8
//	seed = 42
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[catalog]
//	file = "rooms.toml"
//
//	[[catalog.room]]
//	name = "classroom"
//	length = 30
//	depth = 25
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/floorplan/pkg/catalog"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// SearchNames are the file names looked up by [Find], in order.
var SearchNames = []string{"floorplan.toml", "floorplan.yaml", "floorplan.yml"}

// Config is the settings file.
type Config struct {
	Plan    pipeline.Options `toml:"plan" yaml:"plan"`
	Cache   CacheConfig      `toml:"cache" yaml:"cache"`
	Log     LogConfig        `toml:"log" yaml:"log"`
	Catalog CatalogConfig    `toml:"catalog" yaml:"catalog"`

	// dir is the directory of the loaded file; relative paths resolve
	// against it.
	dir string
}

// CacheConfig selects and configures the plan cache.
type CacheConfig struct {
	// Backend is "file" (default), "redis" or "none".
	Backend string `toml:"backend" yaml:"backend"`

	// Dir overrides the file cache directory.
	Dir string `toml:"dir" yaml:"dir"`

	// RedisURL is a redis:// URL for the redis backend.
	RedisURL string `toml:"redis_url" yaml:"redis_url"`

	// Prefix namespaces keys in a shared redis.
	Prefix string `toml:"prefix" yaml:"prefix"`
}

// LogConfig configures the log file written next to terminal output.
type LogConfig struct {
	// File enables logging to a rotated file.
	File string `toml:"file" yaml:"file"`

	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `toml:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is how many rotated files are kept.
	MaxBackups int `toml:"max_backups" yaml:"max_backups"`

	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `toml:"max_age_days" yaml:"max_age_days"`
}

// CatalogConfig extends the built-in room table.
type CatalogConfig struct {
	// File is a catalog file merged over the built-in table.
	File string `toml:"file" yaml:"file"`

	// Rooms are merged last and win over File and the built-in table.
	Rooms []catalog.Entry `toml:"room" yaml:"room"`

	// Replace drops the built-in table instead of extending it.
	Replace bool `toml:"replace" yaml:"replace"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{Backend: BackendFile, Prefix: "floorplan:"},
		Log:   LogConfig{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28},
	}
}

// Load reads the settings file at path. The format is chosen by extension.
func Load(path string) (*Config, error) {
	format, err := catalog.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Decode parses settings in the given format over [DefaultConfig] and
// validates them.
func Decode(r io.Reader, format string) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	switch format {
	case catalog.FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown setting %q", undecoded[0].String())
		}
	case catalog.FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find returns the first settings file in dirs, or "" when there is none.
func Find(dirs ...string) string {
	for _, dir := range dirs {
		for _, name := range SearchNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// SearchDirs returns the working directory followed by the user config
// directory, skipping any that cannot be determined.
func SearchDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if base, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(base, "floorplan"))
	}
	return dirs
}

// Validate checks settings that do not depend on the catalog.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "", BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis needs redis_url")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "log rotation limits must not be negative")
	}

	opts := c.Plan
	return opts.ValidateAndSetDefaults()
}

// Options returns a copy of the plan settings with the catalog resolved.
func (c *Config) Options() (pipeline.Options, error) {
	cat, err := c.BuildCatalog()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		CorridorWidth: c.Plan.CorridorWidth,
		WallThickness: c.Plan.WallThickness,
		Scale:         c.Plan.Scale,
		Margin:        c.Plan.Margin,
		Seed:          c.Plan.Seed,
		Entrance:      c.Plan.Entrance,
		Catalog:       cat,
	}
	return opts, nil
}

// BuildCatalog merges the built-in table, the catalog file and inline rooms.
func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	base := catalog.Default()
	if c.Catalog.Replace {
		base = nil
	}

	if c.Catalog.File != "" {
		path := c.Catalog.File
		if !filepath.IsAbs(path) && c.dir != "" {
			path = filepath.Join(c.dir, path)
		}
		fromFile, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}
		base, err = merge(base, fromFile)
		if err != nil {
			return nil, err
		}
	}

	if len(c.Catalog.Rooms) > 0 {
		inline, err := catalog.New(c.Catalog.Rooms...)
		if err != nil {
			return nil, err
		}
		base, err = merge(base, inline)
		if err != nil {
			return nil, err
		}
	}

	if base == nil {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog replace is set but no rooms are defined")
	}
	return base, nil
}

func merge(base, over *catalog.Catalog) (*catalog.Catalog, error) {
	if base == nil {
		return over, nil
	}
	return base.Merge(over)
}
