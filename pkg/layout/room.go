package layout

import (
	"strings"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Room is one concrete room to be placed.
type Room struct {
	Label  string  `json:"label" msgpack:"label"`
	Type   string  `json:"type" msgpack:"type"`
	Length float64 `json:"length" msgpack:"length"` // along the corridor
	Depth  float64 `json:"depth" msgpack:"depth"`   // away from the corridor
}

// Group is an ordered run of rooms placed contiguously on one side of the
// corridor.
type Group struct {
	Rooms []Room `json:"rooms" msgpack:"rooms"`
}

// Len returns the number of rooms in the group.
func (g Group) Len() int { return len(g.Rooms) }

// Length returns the summed corridor-facing length of the group.
func (g Group) Length() float64 {
	var total float64
	for _, r := range g.Rooms {
		total += r.Length
	}
	return total
}

// MaxDepth returns the depth of the deepest room, or 0 for an empty group.
func (g Group) MaxDepth() float64 {
	var depth float64
	for _, r := range g.Rooms {
		depth = max(depth, r.Depth)
	}
	return depth
}

// Orientation is the direction the corridor runs.
type Orientation string

const (
	// Vertical corridors run top to bottom; groups sit west and east.
	Vertical Orientation = "vertical"
	// Horizontal corridors run left to right; groups sit north and south.
	Horizontal Orientation = "horizontal"
)

// Sides returns the two exterior walls the corridor meets.
func (o Orientation) Sides() [2]Side {
	if o == Horizontal {
		return [2]Side{East, West}
	}
	return [2]Side{North, South}
}

// Side names an exterior wall.
type Side string

const (
	North Side = "N"
	South Side = "S"
	East  Side = "E"
	West  Side = "W"
)

// ParseSide converts "N", "S", "E" or "W" (any case) to a Side.
func ParseSide(s string) (Side, error) {
	switch side := Side(strings.ToUpper(strings.TrimSpace(s))); side {
	case North, South, East, West:
		return side, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown side %q (want N, S, E or W)", s)
}

// Valid reports whether the side can host the entrance for orientation o.
func (s Side) Valid(o Orientation) bool {
	sides := o.Sides()
	return s == sides[0] || s == sides[1]
}
