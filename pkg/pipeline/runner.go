package pipeline

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Generate runs the pipeline for text. Seeded runs are served from and
// stored in the cache; cache failures only cost a recomputation.
func (r *Runner) Generate(ctx context.Context, text string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	var key string
	if opts.Reproducible() {
		key = r.Keyer.PlanKey(text, opts.PlanKeyOpts())
	}

	if key != "" && !opts.Refresh {
		if cached, ok := r.lookup(ctx, key); ok {
			return cached, nil
		}
	}

	result, err := Run(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	if key != "" && !result.Empty() {
		r.store(ctx, key, result)
	}
	return result, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "plan")
		return nil, false
	}

	var result Result
	if err := msgpack.Unmarshal(data, &result); err != nil {
		r.Logger.Debug("discarding unreadable cache entry", "error", err)
		observability.Cache().OnCacheMiss(ctx, "plan")
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "plan")
	result.CacheHit = true
	r.Logger.Debug("plan served from cache", "rooms", result.Stats.RoomCount)
	return &result, true
}

func (r *Runner) store(ctx context.Context, key string, result *Result) {
	data, err := msgpack.Marshal(result)
	if err != nil {
		r.Logger.Warn("encode plan for cache", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.PlanTTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "plan", len(data))
}

// applyLogger uses the runner's logger when opts carries none.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
