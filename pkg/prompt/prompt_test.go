package prompt

import (
	"maps"
	"testing"

	"github.com/matzehuels/floorplan/pkg/catalog"
	"github.com/matzehuels/floorplan/pkg/layout"
)

func TestRooms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []layout.Room
	}{
		{
			name:  "clinic",
			input: "two exam rooms and a waiting area",
			want: []layout.Room{
				{Label: "Exam Room 1", Type: "exam room", Length: 10, Depth: 13},
				{Label: "Exam Room 2", Type: "exam room", Length: 10, Depth: 13},
				{Label: "Waiting Area", Type: "waiting area", Length: 12, Depth: 12},
			},
		},
		{
			name:  "single lobby",
			input: "a lobby",
			want:  []layout.Room{{Label: "Lobby", Type: "lobby", Length: 15, Depth: 15}},
		},
		{
			name:  "zero quantity",
			input: "zero offices",
			want:  nil,
		},
		{
			name:  "digits and separators",
			input: "2 offices; a cafe, 1 bathroom",
			want: []layout.Room{
				{Label: "Office 1", Type: "office", Length: 10, Depth: 10},
				{Label: "Office 2", Type: "office", Length: 10, Depth: 10},
				{Label: "Cafe", Type: "cafe", Length: 12, Depth: 12},
				{Label: "Bathroom", Type: "bathroom", Length: 6, Depth: 8},
			},
		},
		{
			name:  "no quantity defaults to one",
			input: "restroom",
			want:  []layout.Room{{Label: "Restroom", Type: "restroom", Length: 6, Depth: 8}},
		},
		{
			name:  "article an",
			input: "An Exam Room.",
			want:  []layout.Room{{Label: "Exam Room", Type: "exam room", Length: 10, Depth: 13}},
		},
		{
			name:  "alias",
			input: "a waiting room and one café",
			want: []layout.Room{
				{Label: "Waiting Area", Type: "waiting area", Length: 12, Depth: 12},
				{Label: "Cafe", Type: "cafe", Length: 12, Depth: 12},
			},
		},
		{
			name:  "unknown clauses are skipped",
			input: "a ballroom, three lobbies, an office",
			want:  []layout.Room{{Label: "Office", Type: "office", Length: 10, Depth: 10}},
		},
		{
			name:  "leading filler makes a clause unknown",
			input: "a clinic with 2 exam rooms and a waiting area",
			want:  []layout.Room{{Label: "Waiting Area", Type: "waiting area", Length: 12, Depth: 12}},
		},
		{
			name:  "quantity without room",
			input: "3, and",
			want:  nil,
		},
		{
			name:  "empty",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rooms(tt.input, catalog.Default())
			if len(got) != len(tt.want) {
				t.Fatalf("Rooms(%q) = %d rooms %v, want %d", tt.input, len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("room[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseZeroKeepsRequest(t *testing.T) {
	reqs := Parse("zero offices", catalog.Default())
	if len(reqs) != 1 {
		t.Fatalf("Parse() = %v, want one request", reqs)
	}
	if reqs[0] != (Request{Type: "office", Count: 0}) {
		t.Errorf("Parse()[0] = %+v, want office x0", reqs[0])
	}
}

func TestParseClampsQuantity(t *testing.T) {
	reqs := Parse("100000 offices, 99999999999999999999999 lobbies", catalog.Default())
	if len(reqs) != 1 {
		t.Fatalf("Parse() = %v, want one request (lobbies is unknown)", reqs)
	}
	if reqs[0].Count != MaxCount {
		t.Errorf("Count = %d, want %d", reqs[0].Count, MaxCount)
	}
}

func TestClausesFlagCappedQuantity(t *testing.T) {
	tests := []struct {
		text   string
		count  int
		capped bool
	}{
		{"150 offices", MaxCount, true},
		{"100 offices", 100, false},
		{"ten offices", 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			clauses := Clauses(tt.text, catalog.Default())
			if len(clauses) != 1 {
				t.Fatalf("Clauses(%q) = %v, want one clause", tt.text, clauses)
			}
			if c := clauses[0]; c.Quantity != tt.count || c.Capped != tt.capped {
				t.Errorf("Clauses(%q) = quantity %d capped %v, want %d %v", tt.text, c.Quantity, c.Capped, tt.count, tt.capped)
			}
		})
	}
}

func TestClauses(t *testing.T) {
	clauses := Clauses("Two offices and a ballroom; ten", catalog.Default())
	want := []Clause{
		{Text: "two offices", Quantity: 2, Phrase: "offices", Type: "office"},
		{Text: "a ballroom", Quantity: 1, Phrase: "ballroom"},
		{Text: "ten", Quantity: 10},
	}
	if len(clauses) != len(want) {
		t.Fatalf("Clauses() = %+v, want %+v", clauses, want)
	}
	for i := range want {
		if clauses[i] != want[i] {
			t.Errorf("clause[%d] = %+v, want %+v", i, clauses[i], want[i])
		}
	}
	if !clauses[0].Recognized() || clauses[1].Recognized() || clauses[2].Recognized() {
		t.Error("only the first clause should be recognized")
	}
}

func TestConservation(t *testing.T) {
	inputs := []string{
		"two exam rooms and a waiting area",
		"3 offices, 2 restrooms; a lobby and four bathrooms",
		"ten cafes, zero offices, an exam room, 7 waiting areas",
		"nothing useful here",
	}

	for _, input := range inputs {
		reqs := Parse(input, catalog.Default())
		rooms := Expand(reqs, catalog.Default())

		got := map[string]int{}
		for _, r := range rooms {
			got[r.Type]++
		}
		want := Counts(reqs)
		maps.DeleteFunc(want, func(_ string, n int) bool { return n == 0 })

		if !maps.Equal(got, want) {
			t.Errorf("%q: rooms by type = %v, want %v", input, got, want)
		}
	}
}

func TestCustomCatalog(t *testing.T) {
	cat, err := catalog.New(catalog.Entry{Name: "studio", Length: 20, Depth: 18, Aliases: []string{"atelier"}})
	if err != nil {
		t.Fatal(err)
	}

	rooms := Rooms("2 ateliers and a lobby", cat)
	if len(rooms) != 2 {
		t.Fatalf("Rooms() = %v, want 2 studios", rooms)
	}
	if rooms[1].Label != "Studio 2" || rooms[1].Length != 20 {
		t.Errorf("rooms[1] = %+v, want Studio 2 (20x18)", rooms[1])
	}
}
