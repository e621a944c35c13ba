// Package main provides a CLI tool that converts an SVG map into region declarations.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/svgtomap/internal/config"
	"github.com/cory-johannsen/svgtomap/internal/converter"
	"github.com/cory-johannsen/svgtomap/internal/emit"
	"github.com/cory-johannsen/svgtomap/internal/observability"
	"github.com/cory-johannsen/svgtomap/internal/scripting"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("svgtomap", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional path to configuration file")
	inPath := fs.String("in", "", "input SVG file (default stdin)")
	outPath := fs.String("out", "", "output file (default stdout)")
	format := fs.String("format", "", "output format: go or yaml")
	script := fs.String("script", "", "optional Lua file defining rename(name)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *format != "" {
		cfg.Convert.Format = *format
	}
	if *script != "" {
		cfg.Convert.Script = *script
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	emitter, err := emit.New(cfg.Convert.Format, cfg.Convert.AssetPath)
	if err != nil {
		return err
	}

	opts := []converter.Option{converter.WithCenter(cfg.Convert.Center)}
	if cfg.Convert.Script != "" {
		renamer, err := scripting.LoadRenamer(cfg.Convert.Script, cfg.Convert.InstructionLimit)
		if err != nil {
			return err
		}
		defer renamer.Close()
		opts = append(opts, converter.WithRenamer(renamer))
	}

	in := stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	logger.Debug("converting",
		zap.String("format", cfg.Convert.Format),
		zap.String("in", *inPath),
		zap.String("out", *outPath),
	)

	// Buffer the result so a failed conversion leaves an existing output file intact.
	var buf bytes.Buffer
	if err := converter.New(emitter, logger, opts...).Run(in, &buf); err != nil {
		return err
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	if _, err := buf.WriteTo(stdout); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
