// Package geometry turns a [layout.Plan] into renderer-agnostic shapes: room
// rectangles, the corridor band, and the exterior wall segments with a gap
// for the entrance.
//
// # Coordinates
//
// All values are in feet. The origin is the top-left corner of the interior
// (inside the walls); x grows to the east and y to the south. Walls are
// drawn along the interior boundary with the configured thickness, so the
// outer footprint extends WallThickness beyond the interior on every side
// (see [Geometry.Outer]).
//
// For a vertical corridor the first group lines the west boundary and the
// second the east boundary; for a horizontal corridor they line north and
// south. Rooms are stacked along the corridor from the origin and sit flush
// against the outer boundary of their side. The corridor fills the band of
// width CorridorWidth between the two groups' maximum depths.
//
// # Entrance
//
// The wall named by the plan's entrance side is split into collinear pieces
// around a gap that matches the corridor's extent on that wall: the
// corridor's x-span on the north and south walls, its y-span on the east and
// west walls. Zero-length pieces are omitted.
//
// # Canvas
//
// [Geometry.Canvas] converts the footprint into pixel extents for a raster
// renderer, adding the wall thickness and a pixel margin on each side. The
// drawing itself belongs to the renderer.
package geometry
