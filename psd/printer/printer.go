package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/psdkit/psd/layer"
	"github.com/joshuapare/psdkit/psd/mask"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level.
	// Default: 2
	IndentSize int

	// ShowFlags includes the decoded flag names next to the raw flag byte.
	// Default: true
	ShowFlags bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		ShowFlags:  true,
	}
}

// Printer writes decoded layer structures to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintSection(sec)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// PrintSection prints a decoded mask section.
func (p *Printer) PrintSection(sec mask.Section) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.writeJSON(toJSONSection(sec, p.opts.ShowFlags))
	case FormatText:
		return p.printSectionText(sec, 0)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// PrintExtraData prints a decoded layer extra data field.
func (p *Printer) PrintExtraData(ed layer.ExtraData) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.writeJSON(toJSONExtra(ed, p.opts.ShowFlags))
	case FormatText:
		return p.printExtraText(ed)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
