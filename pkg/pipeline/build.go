package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/floorplan/pkg/geometry"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/observability"
)

// Build places the plan's rooms and walls.
func Build(ctx context.Context, plan layout.Plan, opts Options) (geometry.Geometry, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return geometry.Geometry{}, err
	}

	start := time.Now()
	g, err := geometry.Build(plan, opts.GeometryConfig())
	observability.Pipeline().OnGeometryComplete(ctx, len(g.Walls), time.Since(start), err)
	return g, err
}

// Run executes parse, layout and build without caching.
func Run(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Prompt: text}

	parseStart := time.Now()
	parsed := Parse(ctx, text, opts)
	result.Requests = parsed.Requests
	result.Dropped = parsed.Dropped
	result.Rooms = parsed.Rooms
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.RoomCount = len(parsed.Rooms)

	if len(parsed.Rooms) == 0 {
		opts.Logger.Info("no rooms recognized", "dropped", len(parsed.Dropped))
		return result, nil
	}
	opts.Logger.Info("parsed description",
		"rooms", len(parsed.Rooms),
		"dropped", len(parsed.Dropped),
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	plan, err := Layout(ctx, parsed.Rooms, opts)
	if err != nil {
		return nil, err
	}
	result.Plan = &plan
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.VerticalArea, result.Stats.HorizontalArea = plan.Area, plan.Rejected.Area
	if plan.Orientation == layout.Horizontal {
		result.Stats.VerticalArea, result.Stats.HorizontalArea = plan.Rejected.Area, plan.Area
	}

	buildStart := time.Now()
	g, err := Build(ctx, plan, opts)
	if err != nil {
		return nil, err
	}
	result.Geometry = &g
	result.Canvas = g.Canvas(opts.Scale, opts.Margin)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Area = g.Area()

	opts.Logger.Info("built floor plan",
		"orientation", g.Orientation,
		"width", g.Width,
		"height", g.Height,
		"entrance", g.Entrance,
		"duration", result.Stats.BuildTime)
	return result, nil
}
