package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// ReadJSON decodes a document from r.
//
// ReadJSON returns an INVALID_FORMAT error if the JSON is malformed, the
// version is unsupported, the ID is not a UUID, or the interior has no area.
// It does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode plan")
	}
	if doc.Version != Version {
		return Document{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported plan version %d", doc.Version)
	}
	if _, err := uuid.Parse(doc.ID); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "plan id %q", doc.ID)
	}
	if !(doc.Width > 0) || !(doc.Height > 0) {
		return Document{}, errors.New(errors.ErrCodeInvalidFormat, "plan interior %vx%v has no area", doc.Width, doc.Height)
	}
	return doc, nil
}

// ImportJSON reads a document from the JSON file at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "plan file %s", path)
	}
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
