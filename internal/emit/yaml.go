package emit

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/svgtomap/internal/svgmap"
)

var _ Emitter = YAMLEmitter{}

// YAMLEmitter writes regions as a single svgmap.MapDocument.
type YAMLEmitter struct {
	// AssetPath is recorded in the document when non-empty.
	AssetPath string
}

// Emit marshals the regions, validates the result with
// svgmap.LoadMapFromBytes, and writes it.
func (e YAMLEmitter) Emit(w io.Writer, regions []*svgmap.Region) error {
	data, err := yaml.Marshal(svgmap.NewMapDocument(e.AssetPath, regions))
	if err != nil {
		return fmt.Errorf("serialising map document: %w", err)
	}

	// Validate output is loadable before writing.
	if _, err := svgmap.LoadMapFromBytes(data); err != nil {
		return fmt.Errorf("map document failed validation: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing map document: %w", err)
	}
	return nil
}
