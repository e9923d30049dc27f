// Package pkg provides the libraries behind the floorplan command.
//
// # Overview
//
// Floorplan turns a short description of a space into a corridor-based
// floor plan. The pkg directory is organized by pipeline stage:
//
//  1. [catalog] - Room types and their footprints
//  2. [prompt] - Description parsing and room expansion
//  3. [layout] - Group balancing, corridor orientation, entrance side
//  4. [geometry] - Rectangles, walls and the entrance gap
//  5. [pipeline] - Orchestration (parse → layout → build) with caching
//
// # Architecture
//
// The typical data flow:
//
//	"two exam rooms and a waiting area"
//	         ↓
//	    [prompt] package (clauses → requests → rooms)
//	         ↓
//	    [layout] package (two balanced groups + orientation + entrance)
//	         ↓
//	    [geometry] package (placed rooms, corridor, walls, gap)
//	         ↓
//	    [export] package (JSON document for a renderer)
//
// # Quick Start
//
//	res, err := pipeline.Run(ctx, "a lobby, 3 offices and a restroom", pipeline.Options{Seed: 42})
//	if err != nil {
//	    return err
//	}
//	if res.Empty() {
//	    return nil // nothing recognized
//	}
//	doc, _ := export.FromResult(res)
//	_ = export.WriteJSON(doc, os.Stdout)
//
// # Supporting Packages
//
// [cache] - File, Redis and null caches plus key derivation.
//
// [config] - floorplan.toml / floorplan.yaml settings.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for metrics and tracing.
//
// [buildinfo] - Version information injected at build time.
//
// [catalog]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/catalog
// [prompt]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/prompt
// [layout]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/layout
// [geometry]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/geometry
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/pipeline
// [export]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/export
// [cache]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/buildinfo
package pkg
