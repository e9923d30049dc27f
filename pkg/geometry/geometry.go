package geometry

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/layout"
)

// Default dimensions in feet.
const (
	DefaultCorridorWidth = 6.0
	DefaultWallThickness = 0.5
)

// Config holds the dimensions the builder does not derive from rooms.
type Config struct {
	CorridorWidth float64 `json:"corridor_width" msgpack:"corridor_width"`
	WallThickness float64 `json:"wall_thickness" msgpack:"wall_thickness"`
}

// DefaultConfig returns a 6 ft corridor with 6 in walls.
func DefaultConfig() Config {
	return Config{CorridorWidth: DefaultCorridorWidth, WallThickness: DefaultWallThickness}
}

// Validate rejects non-positive or non-finite dimensions.
func (c Config) Validate() error {
	if !(c.CorridorWidth > 0) || math.IsInf(c.CorridorWidth, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "corridor width must be a positive number, got %v", c.CorridorWidth)
	}
	if !(c.WallThickness > 0) || math.IsInf(c.WallThickness, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "wall thickness must be a positive number, got %v", c.WallThickness)
	}
	return nil
}

// Geometry is the complete description of a generated plan.
type Geometry struct {
	Orientation   layout.Orientation `json:"orientation" msgpack:"orientation"`
	CorridorWidth float64            `json:"corridor_width" msgpack:"corridor_width"`
	WallThickness float64            `json:"wall_thickness" msgpack:"wall_thickness"`
	Width         float64            `json:"width" msgpack:"width"` // interior
	Height        float64            `json:"height" msgpack:"height"`
	Corridor      Rect               `json:"corridor" msgpack:"corridor"`
	First         PlacedGroup        `json:"first" msgpack:"first"`
	Second        PlacedGroup        `json:"second" msgpack:"second"`
	Entrance      layout.Side        `json:"entrance" msgpack:"entrance"`
	Gap           Segment            `json:"gap" msgpack:"gap"`
	Walls         []Segment          `json:"walls" msgpack:"walls"`
}

// Build lays out plan with the dimensions in cfg.
func Build(plan layout.Plan, cfg Config) (Geometry, error) {
	if err := cfg.Validate(); err != nil {
		return Geometry{}, err
	}
	if !plan.Entrance.Valid(plan.Orientation) {
		return Geometry{}, errors.New(errors.ErrCodeInvalidInput,
			"entrance %q is not reachable by a %s corridor", plan.Entrance, plan.Orientation)
	}

	first, second := plan.First, plan.Second
	length := max(first.Length(), second.Length())
	d1, d2 := first.MaxDepth(), second.MaxDepth()
	if length <= 0 || d1+d2 <= 0 {
		return Geometry{}, errors.New(errors.ErrCodeInvalidInput, "plan has no rooms with positive size")
	}

	cw := cfg.CorridorWidth
	cross := d1 + cw + d2
	g := Geometry{
		Orientation:   plan.Orientation,
		CorridorWidth: cw,
		WallThickness: cfg.WallThickness,
		Entrance:      plan.Entrance,
	}

	if plan.Orientation == layout.Vertical {
		g.Width, g.Height = cross, length
		g.Corridor = Rect{X: d1, Y: 0, W: cw, H: length}
		g.First = placeVertical(first, layout.West, Rect{X: 0, Y: 0, W: d1, H: length}, func(depth float64) float64 { return 0 })
		g.Second = placeVertical(second, layout.East, Rect{X: d1 + cw, Y: 0, W: d2, H: length}, func(depth float64) float64 { return cross - depth })
	} else {
		g.Width, g.Height = length, cross
		g.Corridor = Rect{X: 0, Y: d1, W: length, H: cw}
		g.First = placeHorizontal(first, layout.North, Rect{X: 0, Y: 0, W: length, H: d1}, func(depth float64) float64 { return 0 })
		g.Second = placeHorizontal(second, layout.South, Rect{X: 0, Y: d1 + cw, W: length, H: d2}, func(depth float64) float64 { return cross - depth })
	}

	g.Walls, g.Gap = walls(g.Width, g.Height, g.Corridor, g.Entrance)
	return g, nil
}

// placeVertical stacks rooms top to bottom; at returns each room's x.
func placeVertical(grp layout.Group, side layout.Side, bounds Rect, at func(depth float64) float64) PlacedGroup {
	pg := PlacedGroup{Side: side, Bounds: bounds, Length: grp.Length(), Depth: grp.MaxDepth()}
	var cursor float64
	for _, r := range grp.Rooms {
		pg.Rooms = append(pg.Rooms, PlacedRoom{Room: r, Rect: Rect{X: at(r.Depth), Y: cursor, W: r.Depth, H: r.Length}})
		cursor += r.Length
	}
	return pg
}

// placeHorizontal stacks rooms left to right; at returns each room's y.
func placeHorizontal(grp layout.Group, side layout.Side, bounds Rect, at func(depth float64) float64) PlacedGroup {
	pg := PlacedGroup{Side: side, Bounds: bounds, Length: grp.Length(), Depth: grp.MaxDepth()}
	var cursor float64
	for _, r := range grp.Rooms {
		pg.Rooms = append(pg.Rooms, PlacedRoom{Room: r, Rect: Rect{X: cursor, Y: at(r.Depth), W: r.Length, H: r.Depth}})
		cursor += r.Length
	}
	return pg
}

// walls returns the N, S, E, W walls with the entrance wall split around
// the corridor's extent on that wall.
func walls(w, h float64, corridor Rect, entrance layout.Side) ([]Segment, Segment) {
	full := []Segment{
		{Side: layout.North, X1: 0, Y1: 0, X2: w, Y2: 0},
		{Side: layout.South, X1: 0, Y1: h, X2: w, Y2: h},
		{Side: layout.East, X1: w, Y1: 0, X2: w, Y2: h},
		{Side: layout.West, X1: 0, Y1: 0, X2: 0, Y2: h},
	}

	var out []Segment
	var gap Segment
	for _, s := range full {
		if s.Side != entrance {
			out = append(out, s)
			continue
		}
		var pieces []Segment
		switch s.Side {
		case layout.North, layout.South:
			lo, hi := clamp(corridor.X, 0, w), clamp(corridor.Right(), 0, w)
			gap = Segment{Side: s.Side, X1: lo, Y1: s.Y1, X2: hi, Y2: s.Y1}
			pieces = []Segment{
				{Side: s.Side, X1: 0, Y1: s.Y1, X2: lo, Y2: s.Y1},
				{Side: s.Side, X1: hi, Y1: s.Y1, X2: w, Y2: s.Y1},
			}
		default:
			lo, hi := clamp(corridor.Y, 0, h), clamp(corridor.Bottom(), 0, h)
			gap = Segment{Side: s.Side, X1: s.X1, Y1: lo, X2: s.X1, Y2: hi}
			pieces = []Segment{
				{Side: s.Side, X1: s.X1, Y1: 0, X2: s.X1, Y2: lo},
				{Side: s.Side, X1: s.X1, Y1: hi, X2: s.X1, Y2: h},
			}
		}
		for _, p := range pieces {
			if p.Length() > 0 {
				out = append(out, p)
			}
		}
	}
	return out, gap
}

func clamp(v, lo, hi float64) float64 { return max(lo, min(v, hi)) }

// Rooms returns every placed room, first group then second.
func (g Geometry) Rooms() []PlacedRoom {
	out := make([]PlacedRoom, 0, len(g.First.Rooms)+len(g.Second.Rooms))
	out = append(out, g.First.Rooms...)
	return append(out, g.Second.Rooms...)
}

// Interior returns the rectangle inside the walls.
func (g Geometry) Interior() Rect { return Rect{W: g.Width, H: g.Height} }

// Outer returns the footprint including the walls.
func (g Geometry) Outer() Rect {
	t := g.WallThickness
	return Rect{X: -t, Y: -t, W: g.Width + 2*t, H: g.Height + 2*t}
}

// Area returns the interior footprint area.
func (g Geometry) Area() float64 { return g.Width * g.Height }

// WallsOn returns the wall pieces on side s.
func (g Geometry) WallsOn(s layout.Side) []Segment {
	var out []Segment
	for _, w := range g.Walls {
		if w.Side == s {
			out = append(out, w)
		}
	}
	return out
}

// Canvas returns pixel extents at scale pixels per foot with margin pixels
// of padding on every side.
func (g Geometry) Canvas(scale float64, margin int) Canvas {
	outer := g.Outer()
	offset := float64(margin) + g.WallThickness*scale
	return Canvas{
		Width:   int(math.Ceil(outer.W*scale)) + 2*margin,
		Height:  int(math.Ceil(outer.H*scale)) + 2*margin,
		OffsetX: offset,
		OffsetY: offset,
		Scale:   scale,
	}
}
