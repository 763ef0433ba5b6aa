// Package output renders parsed values for the CLI.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jsonmend/internal/template"
)

// Format selects the rendering of a parsed value.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name from the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// Renderer writes parsed values to a single destination.
type Renderer struct {
	writer   io.Writer
	format   Format
	indent   int
	template string
}

// New creates a renderer for the given format. indent applies to JSON
// output only; template, when non-empty, overrides format entirely.
func New(w io.Writer, format Format, indent int, tmpl string) *Renderer {
	return &Renderer{
		writer:   w,
		format:   format,
		indent:   indent,
		template: tmpl,
	}
}

// Render writes value followed by a newline.
func (r *Renderer) Render(value any) error {
	if r.template != "" {
		return r.renderTemplate(value)
	}

	switch r.format {
	case FormatYAML:
		return r.renderYAML(value)
	default:
		return r.renderJSON(value)
	}
}

func (r *Renderer) renderJSON(value any) error {
	enc := json.NewEncoder(r.writer)
	enc.SetEscapeHTML(false)
	if r.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", r.indent))
	}

	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (r *Renderer) renderYAML(value any) error {
	payload, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	if _, err := r.writer.Write(payload); err != nil {
		return fmt.Errorf("write YAML: %w", err)
	}
	return nil
}

func (r *Renderer) renderTemplate(value any) error {
	rendered, err := template.Apply(r.template, value)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if _, err := fmt.Fprintln(r.writer, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
