// Package nix renders bookmark records as the Nix list accepted by Home
// Manager's programs.firefox.profiles.<name>.bookmarks option.
package nix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dastanaron/html2nix/internal/models"
)

// Indent styles
const (
	IndentSpace = "space"
	IndentTab   = "tab"
)

var (
	ErrInvalidIndent      = errors.New("indent size must be positive")
	ErrInvalidIndentStyle = errors.New("indent style must be \"space\" or \"tab\"")
)

// Options configures a Renderer
type Options struct {
	IndentSize  int    // repetitions of the indent character per level
	IndentStyle string // IndentSpace (default) or IndentTab
	Brackets    bool   // wrap the document in [ ... ]
}

// DefaultOptions matches the layout Home Manager examples use
func DefaultOptions() Options {
	return Options{IndentSize: 2, IndentStyle: IndentSpace, Brackets: true}
}

// Renderer turns records into Nix text. It holds no state besides its
// configuration and is safe to reuse.
type Renderer struct {
	unit     string
	brackets bool
}

// NewRenderer validates opts and creates a renderer
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.IndentSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIndent, opts.IndentSize)
	}

	var char string
	switch opts.IndentStyle {
	case "", IndentSpace:
		char = " "
	case IndentTab:
		char = "\t"
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidIndentStyle, opts.IndentStyle)
	}

	return &Renderer{
		unit:     strings.Repeat(char, opts.IndentSize),
		brackets: opts.Brackets,
	}, nil
}

// Unit returns the string emitted per indentation level
func (r *Renderer) Unit() string {
	return r.unit
}

// Document renders a complete expression, wrapped in brackets when the
// renderer was configured to do so.
func (r *Renderer) Document(records []models.Record, depth int) string {
	if !r.brackets {
		return r.Render(records, depth)
	}

	var sb strings.Builder
	indent := r.indent(depth)
	sb.WriteString(indent + "[\n")
	r.writeRecords(&sb, records, depth+1)
	sb.WriteString(indent + "]\n")
	return sb.String()
}

// Render renders records as consecutive attribute sets at depth
func (r *Renderer) Render(records []models.Record, depth int) string {
	var sb strings.Builder
	r.writeRecords(&sb, records, depth)
	return sb.String()
}

func (r *Renderer) writeRecords(sb *strings.Builder, records []models.Record, depth int) {
	for _, rec := range records {
		switch v := rec.(type) {
		case *models.ShortcutRecord:
			r.writeShortcut(sb, v, depth)
		case *models.FolderRecord:
			r.writeFolder(sb, v, depth)
		}
	}
}

// URLs and tags are written verbatim; only names are sanitized upstream.
func (r *Renderer) writeShortcut(sb *strings.Builder, s *models.ShortcutRecord, depth int) {
	indent := r.indent(depth)
	inner := indent + r.unit

	sb.WriteString(indent + "{\n")
	fmt.Fprintf(sb, "%sname = \"%s\";\n", inner, s.Name)
	fmt.Fprintf(sb, "%surl = \"%s\";\n", inner, s.URL)
	if len(s.Tags) > 0 {
		sb.WriteString(inner + "tags = [ ")
		for _, t := range s.Tags {
			sb.WriteString("\"" + t + "\" ")
		}
		sb.WriteString("];\n")
	}
	sb.WriteString(indent + "}\n")
}

func (r *Renderer) writeFolder(sb *strings.Builder, f *models.FolderRecord, depth int) {
	indent := r.indent(depth)
	inner := indent + r.unit

	sb.WriteString(indent + "{\n")
	fmt.Fprintf(sb, "%sname = \"%s\";\n", inner, f.Name)
	if f.Toolbar {
		sb.WriteString(inner + "toolbar = true;\n")
	}
	sb.WriteString(inner + "bookmarks = [\n")
	// one level for the attribute, one for the list
	r.writeRecords(sb, f.Bookmarks, depth+2)
	sb.WriteString(inner + "];\n")
	sb.WriteString(indent + "}\n")
}

func (r *Renderer) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(r.unit, depth)
}
