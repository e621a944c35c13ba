package svgmap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// attrWhitespace maps the characters an XML processor folds to a space during
// attribute-value normalization. It runs after encoding/xml has decoded
// character references, so an escaped &#10; is folded too.
var attrWhitespace = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// Extract reads an SVG document from r and returns its regions.
//
// Only direct children of the document root are considered. Every <path>
// yields a region with a single path; every <g> yields a region holding the
// path data of its direct <path> children. Path-derived regions come first,
// followed by group-derived regions, each in document order.
//
// Precondition: r must be non-nil.
// Postcondition: returns the ordered regions, or nil and either a *ParseError
// or a *MissingAttributeError.
func Extract(r io.Reader) ([]*Region, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		paths, groups []*Region
		group         *Region
		depth         int
		rootSeen      bool
		rootClosed    bool
	)
	scope := newNSScope()
	for {
		tok, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, &ParseError{Err: errors.New("junk after document element")}
			}
			if err := scope.push(t); err != nil {
				return nil, &ParseError{Err: err}
			}
			depth++
			line, _ := decoder.InputPos()

			switch {
			case depth == 1:
				rootSeen = true
			case depth == 2 && isSVG(t.Name, "path"):
				region, err := pathRegion(t, line)
				if err != nil {
					return nil, err
				}
				paths = append(paths, region)
			case depth == 2 && isSVG(t.Name, "g"):
				id, ok := attr(t, "id")
				if !ok {
					return nil, &MissingAttributeError{Element: "g", Attribute: "id", Line: line}
				}
				group = newRegion(KindGroup, id, nil)
				groups = append(groups, group)
			case depth == 3 && group != nil && isSVG(t.Name, "path"):
				d, ok := attr(t, "d")
				if !ok {
					return nil, &MissingAttributeError{Element: "path", Attribute: "d", Line: line}
				}
				group.Paths = append(group.Paths, CompactPathData(d))
			}

		case xml.EndElement:
			scope.pop()
			depth--
			switch depth {
			case 1:
				group = nil
			case 0:
				rootClosed = true
			}

		case xml.Directive:
			if !rootSeen {
				declareEntities(decoder, t)
			}

		case xml.CharData:
			if rootClosed && len(bytes.TrimSpace(t)) > 0 {
				return nil, &ParseError{Err: errors.New("junk after document element")}
			}
		}
	}

	if !rootSeen {
		return nil, &ParseError{Err: errors.New("no element found")}
	}
	return append(paths, groups...), nil
}

func pathRegion(se xml.StartElement, line int) (*Region, error) {
	id, ok := attr(se, "id")
	if !ok {
		return nil, &MissingAttributeError{Element: "path", Attribute: "id", Line: line}
	}
	d, ok := attr(se, "d")
	if !ok {
		return nil, &MissingAttributeError{Element: "path", Attribute: "d", Line: line}
	}
	return newRegion(KindPath, id, []string{CompactPathData(d)}), nil
}

func isSVG(name xml.Name, local string) bool {
	return name.Space == Namespace && name.Local == local
}

// attr returns the normalized value of the unqualified attribute local.
func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return attrWhitespace.Replace(a.Value), true
		}
	}
	return "", false
}
