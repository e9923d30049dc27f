package geometry

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/layout"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	W float64 `json:"w" msgpack:"w"`
	H float64 `json:"h" msgpack:"h"`
}

// Right returns the x coordinate of the east edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the south edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Segment is a straight wall piece on one side of the building.
type Segment struct {
	Side layout.Side `json:"side" msgpack:"side"`
	X1   float64     `json:"x1" msgpack:"x1"`
	Y1   float64     `json:"y1" msgpack:"y1"`
	X2   float64     `json:"x2" msgpack:"x2"`
	Y2   float64     `json:"y2" msgpack:"y2"`
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return math.Hypot(s.X2-s.X1, s.Y2-s.Y1) }

// span returns the segment's extent along its own axis.
func (s Segment) span() (lo, hi float64) {
	if s.Y1 == s.Y2 {
		return min(s.X1, s.X2), max(s.X1, s.X2)
	}
	return min(s.Y1, s.Y2), max(s.Y1, s.Y2)
}

// Overlap returns the length two collinear segments share.
func (s Segment) Overlap(o Segment) float64 {
	lo1, hi1 := s.span()
	lo2, hi2 := o.span()
	return max(0, min(hi1, hi2)-max(lo1, lo2))
}

// PlacedRoom is a room with its position.
type PlacedRoom struct {
	layout.Room
	Rect Rect `json:"rect" msgpack:"rect"`
}

// PlacedGroup is one side of the corridor.
type PlacedGroup struct {
	Side   layout.Side  `json:"side" msgpack:"side"`
	Bounds Rect         `json:"bounds" msgpack:"bounds"` // band from the outer boundary to the corridor
	Length float64      `json:"length" msgpack:"length"`
	Depth  float64      `json:"depth" msgpack:"depth"`
	Rooms  []PlacedRoom `json:"rooms" msgpack:"rooms"`
}

// Canvas holds pixel extents for a raster renderer.
type Canvas struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	OffsetX float64 `json:"offset_x"` // pixel position of the interior origin
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"` // pixels per foot
}
