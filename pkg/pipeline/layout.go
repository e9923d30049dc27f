package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/observability"
)

// Layout partitions rooms and picks the corridor orientation and entrance.
// An entrance override in opts replaces the drawn side when it lies on the
// chosen corridor axis; otherwise it is ignored with a warning.
func Layout(ctx context.Context, rooms []layout.Room, opts Options) (layout.Plan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Plan{}, err
	}

	start := time.Now()
	plan, err := layout.Choose(rooms, opts.CorridorWidth, opts.rng())
	observability.Pipeline().OnLayoutComplete(ctx, string(plan.Orientation), plan.Area, time.Since(start), err)
	if err != nil {
		return layout.Plan{}, err
	}

	if opts.Entrance != "" {
		side, _ := layout.ParseSide(opts.Entrance)
		if side.Valid(plan.Orientation) {
			plan.Entrance = side
		} else {
			opts.Logger.Warn("entrance override does not match corridor",
				"entrance", side, "orientation", plan.Orientation, "using", plan.Entrance)
		}
	}

	opts.Logger.Debug("partitioned rooms",
		"orientation", plan.Orientation,
		"first", plan.First.Len(),
		"second", plan.Second.Len(),
		"area", plan.Area,
		"rejected_area", plan.Rejected.Area)
	return plan, nil
}
