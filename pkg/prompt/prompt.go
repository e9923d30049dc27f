// Package prompt extracts room requests from a free-text space description.
//
// The parser is deliberately shallow. It splits the text into clauses on
// commas, semicolons and the word "and", reads an optional leading quantity
// ("3", "three", "a", "an") and looks the rest of the clause up in a
// [catalog.Catalog]. Clauses it cannot resolve are dropped rather than
// reported, so one odd fragment never spoils the whole description:
//
//	rooms := prompt.Rooms("two exam rooms and a waiting area", catalog.Default())
//	// Exam Room 1 (10x13), Exam Room 2 (10x13), Waiting Area (12x12)
package prompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/floorplan/pkg/catalog"
	"github.com/matzehuels/floorplan/pkg/layout"
)

// MaxCount caps the quantity of a single clause. Larger digit quantities are
// clamped and flagged on the [Clause].
const MaxCount = 100

var (
	conjunction = regexp.MustCompile(`\band\b`)
	separators  = regexp.MustCompile(`[;,]`)
)

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Clause is one fragment of the input after splitting.
type Clause struct {
	Text     string // trimmed clause text
	Quantity int    // leading quantity, 1 when absent
	Capped   bool   // quantity was clamped to MaxCount
	Phrase   string // room-type phrase after the quantity
	Type     string // canonical room type, empty when unrecognized
}

// Recognized reports whether the clause resolved to a catalog entry.
func (c Clause) Recognized() bool { return c.Type != "" }

// Request is a recognized clause: a room type and how many to place.
type Request struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Clauses splits text and resolves every clause against cat, keeping the
// unrecognized ones so callers can report them.
func Clauses(text string, cat *catalog.Catalog) []Clause {
	normalized := conjunction.ReplaceAllString(strings.ToLower(text), ",")

	var clauses []Clause
	for _, part := range separators.Split(normalized, -1) {
		part = strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `.!?"'`))
		if part == "" {
			continue
		}
		quantity, capped, rest := leadingQuantity(strings.Fields(part))
		c := Clause{Text: part, Quantity: quantity, Capped: capped, Phrase: strings.Join(rest, " ")}
		if c.Phrase != "" {
			c.Type, _ = cat.Canonical(c.Phrase)
		}
		clauses = append(clauses, c)
	}
	return clauses
}

// Parse returns the recognized requests in input order. A clause quantified
// with "zero" yields a request with Count 0.
func Parse(text string, cat *catalog.Catalog) []Request {
	var reqs []Request
	for _, c := range Clauses(text, cat) {
		if c.Recognized() {
			reqs = append(reqs, Request{Type: c.Type, Count: c.Quantity})
		}
	}
	return reqs
}

// Expand materializes requests into labeled rooms. A request for one room
// is labeled with the bare type ("Lobby"); larger requests are numbered from
// 1 ("Exam Room 1", "Exam Room 2").
func Expand(reqs []Request, cat *catalog.Catalog) []layout.Room {
	var rooms []layout.Room
	for _, req := range reqs {
		e, ok := cat.Lookup(req.Type)
		if !ok {
			continue
		}
		title := catalog.Title(e.Name)
		for i := 1; i <= req.Count; i++ {
			label := title
			if req.Count > 1 {
				label = fmt.Sprintf("%s %d", title, i)
			}
			rooms = append(rooms, layout.Room{Label: label, Type: e.Name, Length: e.Length, Depth: e.Depth})
		}
	}
	return rooms
}

// Rooms parses text and expands the result.
func Rooms(text string, cat *catalog.Catalog) []layout.Room {
	return Expand(Parse(text, cat), cat)
}

// Counts sums the requested quantity per room type.
func Counts(reqs []Request) map[string]int {
	counts := make(map[string]int, len(reqs))
	for _, r := range reqs {
		counts[r.Type] += r.Count
	}
	return counts
}

func leadingQuantity(tokens []string) (int, bool, []string) {
	if len(tokens) == 0 {
		return 1, false, tokens
	}
	first := tokens[0]
	if n, ok := numberWords[first]; ok {
		return n, false, tokens[1:]
	}
	if isDigits(first) {
		n, err := strconv.Atoi(first)
		if err != nil || n > MaxCount {
			return MaxCount, true, tokens[1:]
		}
		return n, false, tokens[1:]
	}
	if first == "a" || first == "an" {
		return 1, false, tokens[1:]
	}
	return 1, false, tokens
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
