package svgmap

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MapDocument is the YAML map definition consumed by the game server.
type MapDocument struct {
	AssetPath string       `yaml:"asset_path,omitempty"`
	Regions   []RegionSpec `yaml:"regions"`
}

// RegionSpec is the YAML form of a Region.
type RegionSpec struct {
	Name       string   `yaml:"name"`
	Neighbours []string `yaml:"neighbours"`
	Center     string   `yaml:"center"`
	Paths      []string `yaml:"paths"`
}

// NewMapDocument builds a MapDocument from regions, preserving their order.
//
// Postcondition: Neighbours and Paths are non-nil for every RegionSpec.
func NewMapDocument(assetPath string, regions []*Region) *MapDocument {
	doc := &MapDocument{
		AssetPath: assetPath,
		Regions:   make([]RegionSpec, 0, len(regions)),
	}
	for _, r := range regions {
		spec := RegionSpec{
			Name:       r.Name,
			Neighbours: append([]string{}, r.Neighbours...),
			Center:     r.Center,
			Paths:      append([]string{}, r.Paths...),
		}
		doc.Regions = append(doc.Regions, spec)
	}
	return doc
}

// LoadMapFromBytes parses and validates a YAML map document.
//
// Precondition: data must be a YAML document in the MapDocument schema.
// Postcondition: returns a validated MapDocument or a non-nil error.
func LoadMapFromBytes(data []byte) (*MapDocument, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc MapDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing map document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks every region of the document.
//
// Postcondition: returns nil, or an error listing every violation.
func (m *MapDocument) Validate() error {
	var errs []string
	for i, r := range m.Regions {
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("regions[%d]: name must not be empty", i))
		}
		if err := validateCenter(r.Center); err != nil {
			errs = append(errs, fmt.Sprintf("regions[%d] %q: %v", i, r.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("map document validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ParseCenter splits a center string into its x and y coordinates.
//
// Precondition: center holds two whitespace-separated floats.
// Postcondition: returns the coordinates or a non-nil error.
func ParseCenter(center string) (x, y float64, err error) {
	tokens := strings.Fields(center)
	if len(tokens) != 2 {
		return 0, 0, errors.New("center must have 2 coordinates")
	}
	if x, err = strconv.ParseFloat(tokens[0], 64); err != nil {
		return 0, 0, fmt.Errorf("center x: %w", err)
	}
	if y, err = strconv.ParseFloat(tokens[1], 64); err != nil {
		return 0, 0, fmt.Errorf("center y: %w", err)
	}
	return x, y, nil
}

func validateCenter(center string) error {
	_, _, err := ParseCenter(center)
	return err
}
