package geometry

import (
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/layout"
)

var (
	exam1   = layout.Room{Label: "Exam Room 1", Type: "exam room", Length: 10, Depth: 13}
	exam2   = layout.Room{Label: "Exam Room 2", Type: "exam room", Length: 10, Depth: 13}
	waiting = layout.Room{Label: "Waiting Area", Type: "waiting area", Length: 12, Depth: 12}
	lobby   = layout.Room{Label: "Lobby", Type: "lobby", Length: 15, Depth: 15}
	wc      = layout.Room{Label: "Restroom", Type: "restroom", Length: 6, Depth: 8}
)

func plan(o layout.Orientation, entrance layout.Side, rooms ...layout.Room) layout.Plan {
	return layout.Plan{Partition: layout.Evaluate(o, rooms, DefaultCorridorWidth), Entrance: entrance}
}

func mustBuild(t *testing.T, p layout.Plan, cfg Config) Geometry {
	t.Helper()
	g, err := Build(p, cfg)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	checkInvariants(t, g)
	return g
}

func TestBuildVerticalClinic(t *testing.T) {
	g := mustBuild(t, plan(layout.Vertical, layout.North, exam1, exam2, waiting), DefaultConfig())

	if g.Width != 31 || g.Height != 20 {
		t.Errorf("interior = %vx%v, want 31x20", g.Width, g.Height)
	}
	if want := (Rect{X: 12, Y: 0, W: 6, H: 20}); g.Corridor != want {
		t.Errorf("Corridor = %+v, want %+v", g.Corridor, want)
	}

	wantRects := map[string]Rect{
		"Waiting Area": {X: 0, Y: 0, W: 12, H: 12},
		"Exam Room 1":  {X: 18, Y: 0, W: 13, H: 10},
		"Exam Room 2":  {X: 18, Y: 10, W: 13, H: 10},
	}
	for _, r := range g.Rooms() {
		if want := wantRects[r.Label]; r.Rect != want {
			t.Errorf("%s rect = %+v, want %+v", r.Label, r.Rect, want)
		}
	}
	if g.First.Side != layout.West || g.Second.Side != layout.East {
		t.Errorf("group sides = %s/%s, want W/E", g.First.Side, g.Second.Side)
	}

	if want := (Segment{Side: layout.North, X1: 12, Y1: 0, X2: 18, Y2: 0}); g.Gap != want {
		t.Errorf("Gap = %+v, want %+v", g.Gap, want)
	}
	north := g.WallsOn(layout.North)
	if len(north) != 2 {
		t.Fatalf("north wall pieces = %d, want 2", len(north))
	}
	if north[0].X2 != 12 || north[1].X1 != 18 || north[1].X2 != 31 {
		t.Errorf("north pieces = %+v", north)
	}
	if len(g.Walls) != 5 {
		t.Errorf("len(Walls) = %d, want 5", len(g.Walls))
	}
}

func TestBuildEntranceGapMatchesCorridorSpan(t *testing.T) {
	for _, side := range []layout.Side{layout.North, layout.South} {
		t.Run(string(side), func(t *testing.T) {
			g := mustBuild(t, plan(layout.Vertical, side, exam1, exam2, waiting, wc), DefaultConfig())

			if g.Gap.X1 != g.Corridor.X || g.Gap.X2 != g.Corridor.Right() {
				t.Errorf("gap x-span = [%v, %v], want corridor [%v, %v]", g.Gap.X1, g.Gap.X2, g.Corridor.X, g.Corridor.Right())
			}
			for _, w := range g.WallsOn(side) {
				if o := w.Overlap(g.Gap); o != 0 {
					t.Errorf("wall %+v overlaps gap by %v", w, o)
				}
			}
		})
	}
}

func TestBuildHorizontal(t *testing.T) {
	g := mustBuild(t, plan(layout.Horizontal, layout.East, exam1, exam2, waiting), DefaultConfig())

	if g.Width != 20 || g.Height != 31 {
		t.Errorf("interior = %vx%v, want 20x31", g.Width, g.Height)
	}
	if want := (Rect{X: 0, Y: 12, W: 20, H: 6}); g.Corridor != want {
		t.Errorf("Corridor = %+v, want %+v", g.Corridor, want)
	}
	if want := (Segment{Side: layout.East, X1: 20, Y1: 12, X2: 20, Y2: 18}); g.Gap != want {
		t.Errorf("Gap = %+v, want %+v", g.Gap, want)
	}
	if r := g.Second.Rooms[1]; r.Rect != (Rect{X: 10, Y: 18, W: 10, H: 13}) {
		t.Errorf("%s rect = %+v", r.Label, r.Rect)
	}
	if g.First.Side != layout.North || g.Second.Side != layout.South {
		t.Errorf("group sides = %s/%s, want N/S", g.First.Side, g.Second.Side)
	}
}

func TestBuildSingleRoom(t *testing.T) {
	g := mustBuild(t, plan(layout.Vertical, layout.North, lobby), DefaultConfig())

	if g.Second.Length != 0 || len(g.Second.Rooms) != 0 {
		t.Errorf("second group = %+v, want empty", g.Second)
	}
	if g.Width != 21 || g.Height != 15 {
		t.Errorf("interior = %vx%v, want 21x15", g.Width, g.Height)
	}
	// The gap reaches the east corner, so only one north piece remains.
	if north := g.WallsOn(layout.North); len(north) != 1 || north[0].X2 != 15 {
		t.Errorf("north pieces = %+v, want [0,15]", north)
	}
}

func TestBuildShallowRoomIsFlushWithOuterBoundary(t *testing.T) {
	p := layout.Plan{
		Partition: layout.Partition{
			Orientation: layout.Vertical,
			First:       layout.Group{Rooms: []layout.Room{lobby}},
			Second:      layout.Group{Rooms: []layout.Room{exam1, wc}},
		},
		Entrance: layout.South,
	}
	g := mustBuild(t, p, DefaultConfig())

	restroom := g.Second.Rooms[1]
	if restroom.Rect.Right() != g.Width {
		t.Errorf("restroom right edge = %v, want %v", restroom.Rect.Right(), g.Width)
	}
	if restroom.Rect.X != g.Width-wc.Depth {
		t.Errorf("restroom x = %v, want %v", restroom.Rect.X, g.Width-wc.Depth)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		plan layout.Plan
		cfg  Config
		code errors.Code
	}{
		{"zero corridor", plan(layout.Vertical, layout.North, lobby), Config{WallThickness: 0.5}, errors.ErrCodeInvalidConfig},
		{"negative wall", plan(layout.Vertical, layout.North, lobby), Config{CorridorWidth: 6, WallThickness: -1}, errors.ErrCodeInvalidConfig},
		{"unreachable entrance", plan(layout.Vertical, layout.East, lobby), DefaultConfig(), errors.ErrCodeInvalidInput},
		{"empty plan", layout.Plan{Partition: layout.Partition{Orientation: layout.Vertical}, Entrance: layout.North}, DefaultConfig(), errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.plan, tt.cfg)
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestBuildScalesWithCorridorAndWalls(t *testing.T) {
	p := plan(layout.Vertical, layout.South, exam1, exam2, waiting, wc)
	base := mustBuild(t, p, DefaultConfig())
	scaled := mustBuild(t, p, Config{CorridorWidth: 2 * DefaultCorridorWidth, WallThickness: 2 * DefaultWallThickness})

	if scaled.Corridor.W != 2*base.Corridor.W {
		t.Errorf("corridor band = %v, want %v", scaled.Corridor.W, 2*base.Corridor.W)
	}
	if scaled.Outer().X != 2*base.Outer().X {
		t.Errorf("wall offset = %v, want %v", scaled.Outer().X, 2*base.Outer().X)
	}
	if scaled.Gap.Length() != 2*base.Gap.Length() {
		t.Errorf("gap = %v, want %v", scaled.Gap.Length(), 2*base.Gap.Length())
	}
	if len(scaled.Rooms()) != len(base.Rooms()) {
		t.Fatalf("room count changed: %d vs %d", len(scaled.Rooms()), len(base.Rooms()))
	}
	for i, r := range scaled.First.Rooms {
		if r.Label != base.First.Rooms[i].Label {
			t.Errorf("first group changed at %d: %s vs %s", i, r.Label, base.First.Rooms[i].Label)
		}
	}
}

func TestCanvas(t *testing.T) {
	g := mustBuild(t, plan(layout.Vertical, layout.North, lobby), DefaultConfig())

	c := g.Canvas(10, 20)
	if c.Width != 260 || c.Height != 200 {
		t.Errorf("canvas = %dx%d, want 260x200", c.Width, c.Height)
	}
	if c.OffsetX != 25 || c.OffsetY != 25 {
		t.Errorf("offset = (%v, %v), want (25, 25)", c.OffsetX, c.OffsetY)
	}
}

func checkInvariants(t *testing.T, g Geometry) {
	t.Helper()

	if g.Width <= 0 || g.Height <= 0 {
		t.Errorf("interior %vx%v must be positive", g.Width, g.Height)
	}
	cross := g.Width
	if g.Orientation == layout.Horizontal {
		cross = g.Height
	}
	if g.CorridorWidth >= cross {
		t.Errorf("corridor width %v must be < cross-axis footprint %v", g.CorridorWidth, cross)
	}

	interior := g.Interior()
	if !interior.Contains(g.Corridor) {
		t.Errorf("corridor %+v outside interior %+v", g.Corridor, interior)
	}
	rooms := g.Rooms()
	for i, a := range rooms {
		if !interior.Contains(a.Rect) {
			t.Errorf("%s %+v outside interior", a.Label, a.Rect)
		}
		if a.Rect.Overlaps(g.Corridor) {
			t.Errorf("%s overlaps the corridor", a.Label)
		}
		for _, b := range rooms[i+1:] {
			if a.Rect.Overlaps(b.Rect) {
				t.Errorf("%s overlaps %s", a.Label, b.Label)
			}
		}
	}

	var wall Segment
	for _, w := range []Segment{
		{Side: layout.North, X2: g.Width},
		{Side: layout.South, Y1: g.Height, X2: g.Width, Y2: g.Height},
		{Side: layout.East, X1: g.Width, X2: g.Width, Y2: g.Height},
		{Side: layout.West, Y2: g.Height},
	} {
		if w.Side == g.Entrance {
			wall = w
		}
	}
	if g.Gap.Length() > wall.Length() || g.Gap.Overlap(wall) != g.Gap.Length() {
		t.Errorf("gap %+v must lie within wall %+v", g.Gap, wall)
	}
	var total float64
	for _, w := range g.WallsOn(g.Entrance) {
		total += w.Length()
	}
	if total+g.Gap.Length() != wall.Length() {
		t.Errorf("entrance wall pieces %v + gap %v != wall %v", total, g.Gap.Length(), wall.Length())
	}
}
