// Package cache stores computed floor plans so that repeated requests with
// the same prompt, seed, and options skip the pipeline.
//
// Three backends are provided:
//
//   - [FileCache]: JSON-wrapped entries on disk, used by the CLI
//   - [RedisCache]: shared cache for several processes
//   - [NullCache]: never stores anything
//
// Keys are derived by a [Keyer] so that every option influencing the output
// takes part in the key.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PlanTTL is how long a computed plan stays cached.
const PlanTTL = 7 * 24 * time.Hour

// PlanKeyOpts holds every option that changes the computed plan, including
// the render hints stored with it.
type PlanKeyOpts struct {
	CorridorWidth float64 `json:"corridor_width"`
	WallThickness float64 `json:"wall_thickness"`
	Scale         float64 `json:"scale"`
	Margin        int     `json:"margin"`
	Seed          uint64  `json:"seed"`
	Entrance      string  `json:"entrance,omitempty"`
	CatalogHash   string  `json:"catalog_hash"`
}

// Keyer derives cache keys.
type Keyer interface {
	// PlanKey returns the key for a plan computed from the given prompt.
	PlanKey(prompt string, opts PlanKeyOpts) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlanKey hashes the prompt together with opts under the "plan" prefix.
func (DefaultKeyer) PlanKey(prompt string, opts PlanKeyOpts) string {
	return hashKey("plan", prompt, opts)
}

var _ Keyer = DefaultKeyer{}
