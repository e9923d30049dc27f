package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/floorplan/pkg/catalog"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/prompt"
)

// Parsed is the output of the parse stage.
type Parsed struct {
	Requests []prompt.Request
	Dropped  []string
	Rooms    []layout.Room
}

// Parse splits text into clauses and expands the recognized ones into rooms.
// Unrecognized clauses are reported in Dropped and logged at debug level.
func Parse(ctx context.Context, text string, opts Options) Parsed {
	opts.SetDefaults()
	start := time.Now()
	out := parseWith(text, opts.Catalog, opts)
	observability.Pipeline().OnParseComplete(ctx, len(out.Requests), len(out.Dropped), len(out.Rooms), time.Since(start))
	return out
}

func parseWith(text string, cat *catalog.Catalog, opts Options) Parsed {
	var out Parsed
	for _, c := range prompt.Clauses(text, cat) {
		if !c.Recognized() {
			opts.Logger.Debug("skipping unknown room type", "clause", c.Text)
			out.Dropped = append(out.Dropped, c.Text)
			continue
		}
		if c.Capped {
			opts.Logger.Debug("quantity capped", "clause", c.Text, "max", prompt.MaxCount)
		}
		if c.Quantity == 0 {
			opts.Logger.Debug("clause requests no rooms", "clause", c.Text)
		}
		out.Requests = append(out.Requests, prompt.Request{Type: c.Type, Count: c.Quantity})
	}
	out.Rooms = prompt.Expand(out.Requests, cat)
	return out
}
