package svgmap

import "fmt"

// ParseError reports input that is not a well-formed XML document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing svg: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingAttributeError reports a region element lacking a required attribute.
type MissingAttributeError struct {
	// Element is the local name of the offending element ("path" or "g").
	Element string
	// Attribute is the missing attribute name ("id" or "d").
	Attribute string
	// Line is the 1-based input line on which the element's start tag ends.
	Line int
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("line %d: <%s> element missing required %q attribute", e.Line, e.Element, e.Attribute)
}
