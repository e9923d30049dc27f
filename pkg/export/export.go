package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/geometry"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// Version is the current document format version.
const Version = 1

// Namespace scopes plan IDs.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/floorplan"))

// Document is the JSON interchange form of a plan.
type Document struct {
	ID            string             `json:"id"`
	Version       int                `json:"version"`
	Prompt        string             `json:"prompt,omitempty"`
	Orientation   layout.Orientation `json:"orientation"`
	CorridorWidth float64            `json:"corridor_width"`
	WallThickness float64            `json:"wall_thickness"`
	Width         float64            `json:"width"`
	Height        float64            `json:"height"`
	Corridor      geometry.Rect      `json:"corridor"`
	Rooms         []Room             `json:"rooms"`
	Entrance      layout.Side        `json:"entrance"`
	Gap           geometry.Segment   `json:"gap"`
	Walls         []geometry.Segment `json:"walls"`
	Canvas        *geometry.Canvas   `json:"canvas,omitempty"`
}

// Room is a placed room flattened for renderers.
type Room struct {
	Label string      `json:"label"`
	Type  string      `json:"type"`
	Side  layout.Side `json:"side"`
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	W     float64     `json:"w"`
	H     float64     `json:"h"`
}

// PlanID returns the deterministic ID of g.
func PlanID(g geometry.Geometry) uuid.UUID {
	data, _ := json.Marshal(g)
	return uuid.NewSHA1(Namespace, data)
}

// New builds a document from g. Canvas may be nil.
func New(g geometry.Geometry, canvas *geometry.Canvas) Document {
	doc := Document{
		ID:            PlanID(g).String(),
		Version:       Version,
		Orientation:   g.Orientation,
		CorridorWidth: g.CorridorWidth,
		WallThickness: g.WallThickness,
		Width:         g.Width,
		Height:        g.Height,
		Corridor:      g.Corridor,
		Entrance:      g.Entrance,
		Gap:           g.Gap,
		Walls:         g.Walls,
		Canvas:        canvas,
	}
	for _, grp := range []geometry.PlacedGroup{g.First, g.Second} {
		for _, r := range grp.Rooms {
			doc.Rooms = append(doc.Rooms, Room{
				Label: r.Label, Type: r.Type, Side: grp.Side,
				X: r.Rect.X, Y: r.Rect.Y, W: r.Rect.W, H: r.Rect.H,
			})
		}
	}
	return doc
}

// FromResult builds a document from a pipeline result. Empty results have
// nothing to export.
func FromResult(res *pipeline.Result) (Document, error) {
	if res == nil || res.Empty() {
		return Document{}, errors.New(errors.ErrCodeInvalidInput, "no rooms recognized, nothing to export")
	}
	canvas := res.Canvas
	doc := New(*res.Geometry, &canvas)
	doc.Prompt = res.Prompt
	return doc, nil
}

// WriteJSON encodes doc as indented JSON and writes it to w.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
