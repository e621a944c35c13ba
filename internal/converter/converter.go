// Package converter turns SVG map images into serialized region declarations.
package converter

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/svgtomap/internal/emit"
	"github.com/cory-johannsen/svgtomap/internal/svgmap"
)

// Renamer rewrites a sanitized region name.
type Renamer interface {
	Rename(name string) (string, error)
}

// Option configures a Converter.
type Option func(*Converter)

// WithCenter replaces the placeholder center written for every region.
func WithCenter(center string) Option {
	return func(c *Converter) { c.center = center }
}

// WithRenamer applies r to every region name after sanitization.
func WithRenamer(r Renamer) Option {
	return func(c *Converter) { c.renamer = r }
}

// Converter orchestrates region extraction and serialization.
type Converter struct {
	emitter emit.Emitter
	logger  *zap.Logger
	center  string
	renamer Renamer
}

// New constructs a Converter writing through emitter.
//
// Precondition: emitter and logger must be non-nil.
// Postcondition: returns a non-nil Converter.
func New(emitter emit.Emitter, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		emitter: emitter,
		logger:  logger,
		center:  svgmap.DefaultCenter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run reads an SVG document from r and writes its regions to w.
//
// Nothing is written when extraction or renaming fails.
//
// Precondition: r and w must be non-nil.
// Postcondition: all regions are written to w, or a non-nil error is returned.
func (c *Converter) Run(r io.Reader, w io.Writer) error {
	start := time.Now()

	regions, err := svgmap.Extract(r)
	if err != nil {
		return fmt.Errorf("extracting regions: %w", err)
	}

	if err := c.finish(regions); err != nil {
		return err
	}
	c.warnDuplicates(regions)

	if err := c.emitter.Emit(w, regions); err != nil {
		return fmt.Errorf("emitting regions: %w", err)
	}

	var paths, groups int
	for _, region := range regions {
		if region.Source == svgmap.KindGroup {
			groups++
		} else {
			paths++
		}
	}
	c.logger.Info("conversion complete",
		zap.Int("path_regions", paths),
		zap.Int("group_regions", groups),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return nil
}

func (c *Converter) finish(regions []*svgmap.Region) error {
	for _, region := range regions {
		region.Center = c.center
		if c.renamer != nil {
			name, err := c.renamer.Rename(region.Name)
			if err != nil {
				return fmt.Errorf("renaming region %q: %w", region.Name, err)
			}
			region.Name = name
		}
		c.logger.Debug("region",
			zap.String("name", region.Name),
			zap.Stringer("source", region.Source),
			zap.Int("paths", len(region.Paths)),
		)
	}
	return nil
}

// warnDuplicates logs every region name that occurs more than once. All
// duplicates are still emitted; the consumer's map literal will reject them.
func (c *Converter) warnDuplicates(regions []*svgmap.Region) {
	counts := make(map[string]int, len(regions))
	for _, region := range regions {
		counts[region.Name]++
		if counts[region.Name] == 2 {
			c.logger.Warn("duplicate region name", zap.String("name", region.Name))
		}
	}
}
