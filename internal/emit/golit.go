package emit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cory-johannsen/svgtomap/internal/svgmap"
)

var _ Emitter = GoLiteralEmitter{}

// GoLiteralEmitter writes regions as Go map-entry literals, ready to paste into
// a map definition keyed by region name:
//
//	"Arafan": {
//	    Neighbours: []string{},
//	    Center: "0 0",
//	    Paths: []string{
//	        "M142.946125.006Z",
//	    },
//	},
type GoLiteralEmitter struct{}

// Emit writes one literal block per region.
func (GoLiteralEmitter) Emit(w io.Writer, regions []*svgmap.Region) error {
	bw := bufio.NewWriter(w)
	for _, r := range regions {
		writeRegion(bw, r)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing regions: %w", err)
	}
	return nil
}

func writeRegion(w *bufio.Writer, r *svgmap.Region) {
	fmt.Fprintf(w, "%s: {\n", strconv.Quote(r.Name))
	w.WriteString("    Neighbours: []string{")
	for i, n := range r.Neighbours {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(strconv.Quote(n))
	}
	w.WriteString("},\n")
	fmt.Fprintf(w, "    Center: %s,\n", strconv.Quote(r.Center))
	w.WriteString("    Paths: []string{\n")
	for _, p := range r.Paths {
		fmt.Fprintf(w, "        %s,\n", strconv.Quote(p))
	}
	w.WriteString("    },\n")
	w.WriteString("},\n")
}
