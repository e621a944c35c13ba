package svgmap

import (
	"encoding/xml"
	"fmt"
	"regexp"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// entityDecl matches a general internal entity declaration inside a DOCTYPE
// internal subset. Parameter entities (<!ENTITY % ...>) and external entities
// are not matched.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"'<>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// declareEntities registers the internal entities declared by a DOCTYPE
// directive so later references such as xmlns="&ns_svg;" resolve. The first
// declaration of a name wins.
func declareEntities(decoder *xml.Decoder, dir xml.Directive) {
	for _, m := range entityDecl.FindAllSubmatch(dir, -1) {
		name := string(m[1])
		value := string(m[2])
		if m[3] != nil {
			value = string(m[3])
		}
		if decoder.Entity == nil {
			decoder.Entity = make(map[string]string)
		}
		if _, ok := decoder.Entity[name]; !ok {
			decoder.Entity[name] = value
		}
	}
}

// nsScope tracks the namespace URIs bound at the current element depth.
// encoding/xml leaves an unbound prefix in Name.Space instead of failing, so
// any non-empty Space that is not a bound URI is an unbound prefix.
type nsScope struct {
	bound  map[string]int
	frames [][]string
}

func newNSScope() *nsScope {
	return &nsScope{bound: map[string]int{xmlNamespace: 1}}
}

// push enters se, binding its xmlns declarations, and reports duplicate
// attributes or unbound prefixes.
func (s *nsScope) push(se xml.StartElement) error {
	var added []string
	seen := make(map[xml.Name]bool, len(se.Attr))
	for _, a := range se.Attr {
		if seen[a.Name] {
			return fmt.Errorf("duplicate attribute %q on <%s>", a.Name.Local, se.Name.Local)
		}
		seen[a.Name] = true
		if isNSDecl(a.Name) {
			added = append(added, a.Value)
			s.bound[a.Value]++
		}
	}
	s.frames = append(s.frames, added)

	if !s.isBound(se.Name.Space) {
		return fmt.Errorf("unbound prefix %q on <%s>", se.Name.Space, se.Name.Local)
	}
	for _, a := range se.Attr {
		if !isNSDecl(a.Name) && !s.isBound(a.Name.Space) {
			return fmt.Errorf("unbound prefix %q on attribute %q", a.Name.Space, a.Name.Local)
		}
	}
	return nil
}

// pop leaves the innermost element.
func (s *nsScope) pop() {
	if len(s.frames) == 0 {
		return
	}
	last := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	for _, uri := range last {
		s.bound[uri]--
	}
}

func (s *nsScope) isBound(space string) bool {
	return space == "" || s.bound[space] > 0
}

func isNSDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}
