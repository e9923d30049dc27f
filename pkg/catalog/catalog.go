package catalog

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Entry is one room type with its default footprint in feet.
type Entry struct {
	Name    string   `toml:"name" yaml:"name" json:"name"`
	Length  float64  `toml:"length" yaml:"length" json:"length"` // along the corridor
	Depth   float64  `toml:"depth" yaml:"depth" json:"depth"`    // away from the corridor
	Aliases []string `toml:"aliases,omitempty" yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Catalog is an immutable room-type table.
type Catalog struct {
	entries map[string]Entry
	names   map[string]string // alias or canonical name -> canonical name
}

var defaultEntries = []Entry{
	{Name: "exam room", Length: 10, Depth: 13, Aliases: []string{"exam rooms"}},
	{Name: "waiting area", Length: 12, Depth: 12, Aliases: []string{"waiting room"}},
	{Name: "lobby", Length: 15, Depth: 15},
	{Name: "office", Length: 10, Depth: 10, Aliases: []string{"offices"}},
	{Name: "cafe", Length: 12, Depth: 12, Aliases: []string{"café", "cafes"}},
	{Name: "restroom", Length: 6, Depth: 8},
	{Name: "bathroom", Length: 6, Depth: 8},
}

var defaultCatalog = mustNew(defaultEntries...)

// Default returns the built-in catalog. The returned value is shared and
// must not be modified.
func Default() *Catalog { return defaultCatalog }

// DefaultEntries returns a copy of the built-in entries.
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	for i, e := range defaultEntries {
		e.Aliases = slices.Clone(e.Aliases)
		out[i] = e
	}
	return out
}

// New builds a catalog from entries. Names and aliases are normalized to
// lower case. It fails when a name is empty, a size is not positive, or a
// name or alias is claimed by two different entries.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		names:   make(map[string]string, len(entries)*2),
	}
	for _, e := range entries {
		e.Name = normalize(e.Name)
		if e.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "room type name cannot be empty")
		}
		if e.Length <= 0 || e.Depth <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"room type %q: length and depth must be positive, got %vx%v", e.Name, e.Length, e.Depth)
		}
		if _, dup := c.entries[e.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate room type %q", e.Name)
		}

		aliases := make([]string, 0, len(e.Aliases))
		for _, a := range e.Aliases {
			if a = normalize(a); a != "" && a != e.Name && !slices.Contains(aliases, a) {
				aliases = append(aliases, a)
			}
		}
		e.Aliases = aliases

		for _, key := range append([]string{e.Name}, aliases...) {
			if owner, taken := c.names[key]; taken && owner != e.Name {
				return nil, errors.New(errors.ErrCodeInvalidCatalog,
					"name %q is claimed by both %q and %q", key, owner, e.Name)
			}
			c.names[key] = e.Name
		}
		c.entries[e.Name] = e
	}
	return c, nil
}

func mustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Canonical resolves a lower-cased, trimmed phrase to a canonical room-type
// name. A trailing "s" is dropped first when the singular form is known.
func (c *Catalog) Canonical(phrase string) (string, bool) {
	if singular, ok := strings.CutSuffix(phrase, "s"); ok {
		if name, ok := c.names[singular]; ok {
			return name, true
		}
	}
	name, ok := c.names[phrase]
	return name, ok
}

// Lookup returns the entry for phrase, resolving aliases and plurals.
func (c *Catalog) Lookup(phrase string) (Entry, bool) {
	name, ok := c.Canonical(phrase)
	if !ok {
		return Entry{}, false
	}
	return c.entries[name], true
}

// Len returns the number of room types.
func (c *Catalog) Len() int { return len(c.entries) }

// Names returns the canonical names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Entries returns all entries sorted by name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, name := range c.Names() {
		e := c.entries[name]
		e.Aliases = slices.Clone(e.Aliases)
		out = append(out, e)
	}
	return out
}

// Merge returns a new catalog holding c's entries overridden and extended by
// other's. Neither input is modified.
func (c *Catalog) Merge(other *Catalog) (*Catalog, error) {
	if other == nil || other.Len() == 0 {
		return c, nil
	}
	var entries []Entry
	for _, e := range c.Entries() {
		if _, replaced := other.entries[e.Name]; replaced {
			continue
		}
		// Drop base aliases that the overriding catalog now owns.
		e.Aliases = slices.DeleteFunc(e.Aliases, func(a string) bool {
			_, taken := other.names[a]
			return taken
		})
		if _, taken := other.names[e.Name]; taken {
			continue
		}
		entries = append(entries, e)
	}
	return New(append(entries, other.Entries()...)...)
}

// Title returns the display form of a room-type name: each word starts with
// an upper-case letter ("exam room" -> "Exam Room").
func Title(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
