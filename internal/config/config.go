// Package config parses command-line options for the jsonmend tool.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jsonmend/internal/output"
)

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrHelp           = errors.New("help requested")
	ErrVersion        = errors.New("version requested")
	ErrNegativeIndent = errors.New("--indent must be >= 0")
)

// Config defines CLI options for the jsonmend command.
type Config struct {
	InputFiles []string // empty means stdin
	Path       string
	All        bool
	Format     output.Format
	Indent     int
	Template   string
	Strict     bool
}

// Parse parses and validates CLI arguments.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	path := fs.String("path", "", "JSONPath expression applied to the parsed value")
	all := fs.Bool("all", false, "Emit every JSONPath match instead of the first")
	format := fs.String("output", "json", "Output format: json or yaml")
	indent := fs.Int("indent", 2, "JSON output indentation width (0 for compact)")
	tmpl := fs.String("template", "", "Render output through a Go template instead of a format")
	strict := fs.Bool("strict", false, "Fail on invalid JSON without attempting repair")
	version := fs.Bool("version", false, "Show version information")
	fs.BoolVar(version, "v", false, "Show version information")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if *version {
		return nil, ErrVersion
	}

	if *indent < 0 {
		return nil, ErrNegativeIndent
	}

	parsedFormat, err := output.ParseFormat(*format)
	if err != nil {
		return nil, err
	}

	files := fs.Args()
	for _, file := range files {
		if file == "-" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return nil, fmt.Errorf("input file %s not accessible: %w", file, err)
		}
	}

	return &Config{
		InputFiles: files,
		Path:       *path,
		All:        *all,
		Format:     parsedFormat,
		Indent:     *indent,
		Template:   *tmpl,
		Strict:     *strict,
	}, nil
}

// Usage returns command usage text.
func Usage() string {
	return `jsonmend - repair and parse almost-JSON

Usage:
  jsonmend [options] [file ...]

Reads from stdin when no files are given ("-" also selects stdin).
Input that is not strict JSON goes through a single repair pass:
unquoted keys are quoted, single-quoted strings are normalized, and
the result is decoded strictly.

Options:
  --path EXPR       JSONPath expression applied to the parsed value
  --all             Emit every JSONPath match instead of the first
  --output FORMAT   Output format: json or yaml (default: json)
  --indent N        JSON indentation width, 0 for compact (default: 2)
  --template TEXT   Render output through a Go template
  --strict          Fail on invalid JSON without attempting repair
  -h, --help        Show this help message
  -v, --version     Show version information`
}
