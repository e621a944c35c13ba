// Package svgmap extracts named map regions from SVG documents.
package svgmap

import "strings"

// Namespace is the SVG XML namespace. Only elements in this namespace are
// considered when extracting regions.
const Namespace = "http://www.w3.org/2000/svg"

// DefaultCenter is the placeholder center written for every extracted region.
// Real coordinates are filled in by hand downstream.
const DefaultCenter = "0 0"

// nameSuffix is appended by some editors to duplicated layer ids.
const nameSuffix = "_1_"

// Kind identifies the SVG element a Region was built from.
type Kind int

const (
	// KindPath is a region built from a single root-level <path>.
	KindPath Kind = iota
	// KindGroup is a region built from a root-level <g> and its direct <path> children.
	KindGroup
)

// String returns the SVG element name for k.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindGroup:
		return "g"
	default:
		return "unknown"
	}
}

// Region is a named map area.
//
// Regions built from a path always carry exactly one entry in Paths; regions
// built from a group carry one entry per direct path child, possibly none.
type Region struct {
	Name       string
	Paths      []string
	Neighbours []string
	Center     string
	Source     Kind
}

// SanitizeName converts an SVG id into a region display name.
//
// A single trailing "_1_" is stripped, then every underscore becomes a space.
//
// Postcondition: result contains no '_' characters.
func SanitizeName(id string) string {
	id = strings.TrimSuffix(id, nameSuffix)
	return strings.ReplaceAll(id, "_", " ")
}

// CompactPathData removes every space character from SVG path data.
//
// Only U+0020 is removed. Adjacent numbers separated by a single space are
// merged ("1 1" becomes "11"); consumers rely on this exact form.
func CompactPathData(d string) string {
	return strings.ReplaceAll(d, " ", "")
}

func newRegion(kind Kind, id string, paths []string) *Region {
	if paths == nil {
		paths = []string{}
	}
	return &Region{
		Name:       SanitizeName(id),
		Paths:      paths,
		Neighbours: []string{},
		Center:     DefaultCenter,
		Source:     kind,
	}
}
