package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Supported catalog file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// file is the on-disk layout shared by TOML and YAML catalogs.
type file struct {
	Rooms []Entry `toml:"room" yaml:"room"`
}

// Load reads a catalog file. The format is chosen by extension: .toml, or
// .yaml/.yml.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "open %s", path)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "load %s", path)
	}
	return c, nil
}

// Decode reads a catalog in the given format (FormatTOML or FormatYAML).
func Decode(r io.Reader, format string) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f file
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode toml")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
	}

	if len(f.Rooms) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog defines no rooms")
	}
	return New(f.Rooms...)
}

// Encode writes c in the given format. The output round-trips through Decode.
func Encode(w io.Writer, c *Catalog, format string) error {
	f := file{Rooms: c.Entries()}
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
}

// FormatFromPath maps a file extension to a catalog format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog file %q (want .toml, .yaml or .yml)", path)
}
