// Package catalog holds the table of room types floorplan knows how to place.
//
// Each [Entry] maps a canonical lower-case room-type name to its default
// footprint: the length the room presents along the corridor and the depth it
// extends away from it, both in feet. Aliases (plural forms, alternate
// spellings) resolve to the same entry.
//
// A [Catalog] is immutable once built and safe for concurrent use. Adding a
// room type is a data change: pass another [Entry] to [New], or list it in a
// catalog file read by [Load].
//
// # Name Resolution
//
// [Catalog.Canonical] is the single resolution function used by both the
// prompt parser and labeling. It accepts a phrase that is already lower-cased
// and trimmed, strips one trailing "s" when the singular form is known, and
// follows aliases:
//
//	cat := catalog.Default()
//	name, ok := cat.Canonical("exam rooms") // "exam room", true
//	e, _ := cat.Lookup(name)                // {Length: 10, Depth: 13}
//	catalog.Title(name)                     // "Exam Room"
//
// # Catalog Files
//
// Catalog files are TOML or YAML, chosen by extension:
//
//	[[room]]
//	name = "exam room"
//	length = 10.0
//	depth = 13.0
//	aliases = ["exam rooms"]
package catalog
