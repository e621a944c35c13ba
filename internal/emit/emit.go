// Package emit serializes extracted map regions.
package emit

import (
	"fmt"
	"io"

	"github.com/cory-johannsen/svgtomap/internal/svgmap"
)

// Supported output formats.
const (
	FormatGo   = "go"
	FormatYAML = "yaml"
)

// Emitter writes regions to an output stream.
//
// Precondition: w must be non-nil.
// Postcondition: every region is written in order, or a non-nil error is returned.
type Emitter interface {
	Emit(w io.Writer, regions []*svgmap.Region) error
}

// New returns the Emitter for format. An empty format selects FormatGo.
// assetPath is only used by the YAML emitter.
func New(format, assetPath string) (Emitter, error) {
	switch format {
	case "", FormatGo:
		return GoLiteralEmitter{}, nil
	case FormatYAML:
		return YAMLEmitter{AssetPath: assetPath}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: %s, %s)", format, FormatGo, FormatYAML)
	}
}
