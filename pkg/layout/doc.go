// Package layout splits a list of rooms into the two groups that line a
// central corridor and picks the corridor orientation.
//
// # Balancing
//
// [Balance] is a longest-processing-time heuristic: rooms are taken in order
// of decreasing corridor-facing length and each goes to whichever group is
// currently shorter, ties going to the first group. The result is within a
// factor of two of the optimal split, which is enough for a readable plan.
// When every room lands in the first group the most recently added one is
// moved across, so the second group is never empty while the first holds two
// or more rooms. A single room stays in the first group and the second group
// is empty with zero length.
//
// # Orientation
//
// [Choose] evaluates the split for a vertical and a horizontal corridor and
// keeps the orientation with the smaller footprint area, where
//
//	area = corridor length × (first depth + corridor width + second depth)
//
// Ties favor the vertical corridor. The entrance side is then drawn uniformly
// from the two sides the corridor reaches (N/S for vertical, E/W for
// horizontal) using the caller's random source, so results are reproducible
// under a fixed seed.
package layout
