package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

func clinic(t *testing.T, seed uint64) *pipeline.Result {
	t.Helper()
	res, err := pipeline.Run(context.Background(), "two exam rooms and a waiting area", pipeline.Options{Seed: seed})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestFromResult(t *testing.T) {
	res := clinic(t, 42)
	doc, err := FromResult(res)
	if err != nil {
		t.Fatalf("FromResult: %v", err)
	}

	if doc.Version != Version {
		t.Errorf("Version = %d, want %d", doc.Version, Version)
	}
	if doc.Prompt != res.Prompt {
		t.Errorf("Prompt = %q, want %q", doc.Prompt, res.Prompt)
	}
	if len(doc.Rooms) != 3 {
		t.Errorf("rooms = %d, want 3", len(doc.Rooms))
	}
	if doc.Canvas == nil || doc.Canvas.Width != res.Canvas.Width {
		t.Errorf("Canvas = %+v, want %+v", doc.Canvas, res.Canvas)
	}
	for _, r := range doc.Rooms {
		if r.Side != res.Geometry.First.Side && r.Side != res.Geometry.Second.Side {
			t.Errorf("room %s on side %s, not a group side", r.Label, r.Side)
		}
	}
}

func TestFromResultRoomRects(t *testing.T) {
	res := clinic(t, 42)
	doc, err := FromResult(res)
	if err != nil {
		t.Fatalf("FromResult: %v", err)
	}

	placed := res.Geometry.Rooms()
	if len(doc.Rooms) != len(placed) {
		t.Fatalf("rooms = %d, want %d", len(doc.Rooms), len(placed))
	}
	for i, r := range doc.Rooms {
		want := placed[i].Rect
		if r.X != want.X || r.Y != want.Y || r.W != want.W || r.H != want.H {
			t.Errorf("%s at (%v, %v) %vx%v, want %+v", r.Label, r.X, r.Y, r.W, r.H, want)
		}
	}
	// Exam Room 2 sits below Exam Room 1 on the east side.
	if last := doc.Rooms[len(doc.Rooms)-1]; last.X != 18 || last.Y != 10 {
		t.Errorf("%s at (%v, %v), want (18, 10)", last.Label, last.X, last.Y)
	}
}

func TestFromResultEmpty(t *testing.T) {
	res, err := pipeline.Run(context.Background(), "zero offices", pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromResult(res); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("FromResult(empty) = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if _, err := FromResult(nil); err == nil {
		t.Error("FromResult(nil) should fail")
	}
}

func TestPlanIDDeterministic(t *testing.T) {
	a := clinic(t, 42)
	b := clinic(t, 42)
	if PlanID(*a.Geometry) != PlanID(*b.Geometry) {
		t.Error("equal geometry should share a plan id")
	}

	c := *a.Geometry
	c.CorridorWidth++
	if PlanID(c) == PlanID(*a.Geometry) {
		t.Error("different geometry should not share a plan id")
	}

	if v := PlanID(c).Version(); v != 5 {
		t.Errorf("plan id version = %d, want 5", v)
	}
}

func TestRoundTrip(t *testing.T) {
	doc, err := FromResult(clinic(t, 9))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.ID != doc.ID || got.Width != doc.Width || len(got.Walls) != len(doc.Walls) || got.Gap != doc.Gap {
		t.Errorf("round trip changed document: %+v vs %+v", got, doc)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"id":`},
		{"unknown field", `{"id":"5f0c0c1e-1c2b-5d2e-9b1a-000000000000","version":1,"width":1,"height":1,"extra":true}`},
		{"version", `{"id":"5f0c0c1e-1c2b-5d2e-9b1a-000000000000","version":2,"width":1,"height":1}`},
		{"bad id", `{"id":"plan-1","version":1,"width":1,"height":1}`},
		{"no area", `{"id":"5f0c0c1e-1c2b-5d2e-9b1a-000000000000","version":1,"width":0,"height":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadJSON() = %v, want %s", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestExportImportFile(t *testing.T) {
	doc, err := FromResult(clinic(t, 3))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := ExportJSON(doc, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.ID != doc.ID {
		t.Errorf("ID = %s, want %s", got.ID, doc.ID)
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}
