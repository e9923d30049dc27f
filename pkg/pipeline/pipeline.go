// Package pipeline provides the text → rooms → partition → geometry flow
// shared by the CLI and any other entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: split the description into clauses and expand recognized
//     clauses into labeled rooms ([prompt])
//  2. Layout: balance the rooms into two groups, compare corridor
//     orientations and pick the entrance ([layout])
//  3. Build: place rooms, corridor, walls and the entrance gap ([geometry])
//
// Each stage is a plain function; [Runner] chains them and caches seeded
// results.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Generate(ctx, "two exam rooms and a waiting area", pipeline.Options{Seed: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Empty() {
//	    // nothing recognized
//	}
//	g := result.Geometry
//
// A description that yields no rooms is not an error: the result simply has
// no geometry.
package pipeline

import (
	"encoding/json"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/catalog"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geometry"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/prompt"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultCorridorWidth is the corridor width in feet.
	DefaultCorridorWidth = geometry.DefaultCorridorWidth

	// DefaultWallThickness is the exterior wall thickness in feet.
	DefaultWallThickness = geometry.DefaultWallThickness

	// DefaultScale is the render hint in pixels per foot.
	DefaultScale = 10.0

	// DefaultMargin is the render hint padding in pixels.
	DefaultMargin = 20
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the floor plan pipeline.
// Zero values are replaced by defaults in [Options.ValidateAndSetDefaults].
type Options struct {
	CorridorWidth float64 `json:"corridor_width,omitempty" toml:"corridor_width" yaml:"corridor_width"`
	WallThickness float64 `json:"wall_thickness,omitempty" toml:"wall_thickness" yaml:"wall_thickness"`

	// Render hints, carried through to the canvas extents.
	Scale  float64 `json:"scale,omitempty" toml:"scale" yaml:"scale"`
	Margin int     `json:"margin,omitempty" toml:"margin" yaml:"margin"`

	// Seed makes the entrance draw reproducible. Zero means unseeded.
	Seed uint64 `json:"seed,omitempty" toml:"seed" yaml:"seed"`

	// Entrance forces the entrance side (N, S, E, W) when it lies on the
	// chosen corridor axis.
	Entrance string `json:"entrance,omitempty" toml:"entrance" yaml:"entrance"`

	// Refresh bypasses cached results.
	Refresh bool `json:"refresh,omitempty" toml:"-" yaml:"-"`

	// Runtime options (not serialized)
	Catalog *catalog.Catalog `json:"-" toml:"-" yaml:"-"`
	Rand    *rand.Rand       `json:"-" toml:"-" yaml:"-"`
	Logger  *log.Logger      `json:"-" toml:"-" yaml:"-"`

	validated bool
}

// ValidateAndSetDefaults applies defaults and rejects invalid settings
// before any parsing happens. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.CorridorWidth == 0 {
		o.CorridorWidth = DefaultCorridorWidth
	}
	if o.WallThickness == 0 {
		o.WallThickness = DefaultWallThickness
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks dimensions, render hints and the entrance override.
func (o *Options) Validate() error {
	if err := o.GeometryConfig().Validate(); err != nil {
		return err
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be a positive number, got %v", o.Scale)
	}
	if o.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margin must not be negative, got %d", o.Margin)
	}
	if o.Entrance != "" {
		if _, err := layout.ParseSide(o.Entrance); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid entrance")
		}
	}
	return nil
}

// GeometryConfig returns the builder dimensions.
func (o *Options) GeometryConfig() geometry.Config {
	return geometry.Config{CorridorWidth: o.CorridorWidth, WallThickness: o.WallThickness}
}

// Reproducible reports whether equal inputs yield equal results.
// Unseeded runs and runs with a caller-supplied source are not.
func (o *Options) Reproducible() bool {
	return o.Seed != 0 && o.Rand == nil
}

// PlanKeyOpts returns cache key options for plan computation.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		CorridorWidth: o.CorridorWidth,
		WallThickness: o.WallThickness,
		Scale:         o.Scale,
		Margin:        o.Margin,
		Seed:          o.Seed,
		Entrance:      o.Entrance,
		CatalogHash:   CatalogHash(o.Catalog),
	}
}

// CatalogHash returns a content hash of cat's entries.
func CatalogHash(cat *catalog.Catalog) string {
	data, _ := json.Marshal(cat.Entries())
	return cache.Hash(data)
}

// rng returns the caller's source or a fresh one derived from Seed.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return layout.NewRand(o.Seed)
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Prompt is the description the result was computed from.
	Prompt string `msgpack:"prompt"`

	// Requests are the recognized clauses in input order.
	Requests []prompt.Request `msgpack:"requests"`

	// Dropped lists clause texts that matched no room type.
	Dropped []string `msgpack:"dropped"`

	// Rooms are the expanded room instances.
	Rooms []layout.Room `msgpack:"rooms"`

	// Plan is the chosen partition. Nil when no rooms were recognized.
	Plan *layout.Plan `msgpack:"plan"`

	// Geometry is the built floor plan. Nil when no rooms were recognized.
	Geometry *geometry.Geometry `msgpack:"geometry"`

	// Canvas is the pixel extents hint for an external renderer.
	Canvas geometry.Canvas `msgpack:"canvas"`

	// Stats contains timing and size information.
	Stats Stats `msgpack:"stats"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `msgpack:"-"`
}

// Empty reports whether the description produced no rooms.
func (r *Result) Empty() bool { return r.Geometry == nil }

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount      int           `msgpack:"room_count"`
	Area           float64       `msgpack:"area"`
	VerticalArea   float64       `msgpack:"vertical_area"`
	HorizontalArea float64       `msgpack:"horizontal_area"`
	ParseTime      time.Duration `msgpack:"parse_time"`
	LayoutTime     time.Duration `msgpack:"layout_time"`
	BuildTime      time.Duration `msgpack:"build_time"`
}
