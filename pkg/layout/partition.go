package layout

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Partition is the two-group split for one corridor orientation.
type Partition struct {
	Orientation    Orientation `json:"orientation" msgpack:"orientation"`
	First          Group       `json:"first" msgpack:"first"`   // west (vertical) or north (horizontal)
	Second         Group       `json:"second" msgpack:"second"` // east (vertical) or south (horizontal)
	CorridorLength float64     `json:"corridor_length" msgpack:"corridor_length"`
	Area           float64     `json:"area" msgpack:"area"`
}

// Plan is the chosen partition, the partition it beat, and the entrance.
type Plan struct {
	Partition
	Rejected Partition `json:"rejected" msgpack:"rejected"`
	Entrance Side      `json:"entrance" msgpack:"entrance"`
}

// Balance splits rooms into two groups of similar corridor-facing length.
// The input slice is not modified. A single room is not moved across: it
// stays in the first group and the second group is empty.
func Balance(rooms []Room) (first, second Group) {
	sorted := slices.Clone(rooms)
	slices.SortStableFunc(sorted, func(a, b Room) int {
		return cmp.Compare(b.Length, a.Length)
	})

	var firstLen, secondLen float64
	for _, r := range sorted {
		if firstLen <= secondLen {
			first.Rooms = append(first.Rooms, r)
			firstLen += r.Length
		} else {
			second.Rooms = append(second.Rooms, r)
			secondLen += r.Length
		}
	}

	// A lone room stays in the first group; the second is then empty.
	if second.Len() == 0 && first.Len() > 1 {
		last := len(first.Rooms) - 1
		second.Rooms = append(second.Rooms, first.Rooms[last])
		first.Rooms = first.Rooms[:last]
	}
	return first, second
}

// Evaluate balances rooms for orientation o and computes its footprint area.
func Evaluate(o Orientation, rooms []Room, corridorWidth float64) Partition {
	first, second := Balance(rooms)
	length := max(first.Length(), second.Length())
	return Partition{
		Orientation:    o,
		First:          first,
		Second:         second,
		CorridorLength: length,
		Area:           length * (first.MaxDepth() + corridorWidth + second.MaxDepth()),
	}
}

// Choose evaluates both orientations, keeps the one with the smaller area
// (vertical on ties) and draws the entrance side from rng. A nil rng uses
// the process-level random source.
func Choose(rooms []Room, corridorWidth float64, rng *rand.Rand) (Plan, error) {
	if len(rooms) == 0 {
		return Plan{}, errors.New(errors.ErrCodeInvalidInput, "no rooms to place")
	}
	if corridorWidth <= 0 {
		return Plan{}, errors.New(errors.ErrCodeInvalidConfig, "corridor width must be positive, got %v", corridorWidth)
	}

	vertical := Evaluate(Vertical, rooms, corridorWidth)
	horizontal := Evaluate(Horizontal, rooms, corridorWidth)

	plan := Plan{Partition: vertical, Rejected: horizontal}
	if vertical.Area > horizontal.Area {
		plan = Plan{Partition: horizontal, Rejected: vertical}
	}
	plan.Entrance = pickSide(plan.Orientation, rng)
	return plan, nil
}

// NewRand returns a PCG-backed source. A zero seed yields an unseeded source.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func pickSide(o Orientation, rng *rand.Rand) Side {
	sides := o.Sides()
	if rng == nil {
		return sides[rand.IntN(len(sides))]
	}
	return sides[rng.IntN(len(sides))]
}
