package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
)

const tomlCatalog = `
[[room]]
name = "Conference Room"
length = 20.0
depth = 15.0
aliases = ["meeting room"]

[[room]]
name = "storage"
length = 8
depth = 6
`

const yamlCatalog = `
room:
  - name: conference room
    length: 20
    depth: 15
    aliases: [meeting room]
  - name: storage
    length: 8
    depth: 6
`

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
	}{
		{"toml", FormatTOML, tomlCatalog},
		{"yaml", FormatYAML, yamlCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if c.Len() != 2 {
				t.Errorf("Len() = %d, want 2", c.Len())
			}
			e, ok := c.Lookup("meeting rooms")
			if !ok {
				t.Fatal("Lookup(meeting rooms) not found")
			}
			if e.Name != "conference room" || e.Length != 20 || e.Depth != 15 {
				t.Errorf("entry = %+v, want conference room 20x15", e)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
		code   errors.Code
	}{
		{"unknown format", "json", "{}", errors.ErrCodeInvalidFormat},
		{"bad toml", FormatTOML, "[[room]\nname=", errors.ErrCodeInvalidCatalog},
		{"bad yaml", FormatYAML, "room: [", errors.ErrCodeInvalidCatalog},
		{"unknown yaml field", FormatYAML, "room:\n  - name: x\n    width: 3\n", errors.ErrCodeInvalidCatalog},
		{"empty", FormatYAML, "", errors.ErrCodeInvalidCatalog},
		{"invalid entry", FormatTOML, "[[room]]\nname = \"x\"\nlength = 0\ndepth = 1\n", errors.ErrCodeInvalidCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("Decode() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []string{FormatTOML, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, Default(), format); err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			c, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if c.Len() != Default().Len() {
				t.Errorf("Len() = %d, want %d", c.Len(), Default().Len())
			}
			if name, _ := c.Canonical("café"); name != "cafe" {
				t.Errorf("Canonical(café) = %q, want cafe", name)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.toml")
	if err := os.WriteFile(path, []byte(tomlCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := c.Lookup("storage"); !ok {
		t.Error("Lookup(storage) not found")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"rooms.toml", FormatTOML, false},
		{"rooms.YAML", FormatYAML, false},
		{"dir/rooms.yml", FormatYAML, false},
		{"rooms.json", "", true},
		{"rooms", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
