package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/psdkit/psd/layer"
	"github.com/joshuapare/psdkit/psd/mask"
)

func (p *Printer) indent(level int) string {
	return strings.Repeat(" ", level*p.opts.IndentSize)
}

func (p *Printer) line(level int, format string, args ...any) error {
	_, err := fmt.Fprintf(p.writer, p.indent(level)+format+"\n", args...)
	return err
}

func (p *Printer) printSectionText(sec mask.Section, level int) error {
	if err := p.printRecordText("Vector mask", sec.Vector, level); err != nil {
		return err
	}
	return p.printRecordText("Raster mask", sec.Raster, level)
}

func (p *Printer) printRecordText(title string, r *mask.Record, level int) error {
	if r == nil {
		return p.line(level, "%s: (none)", title)
	}
	if err := p.line(level, "%s:", title); err != nil {
		return err
	}
	level++
	lines := []struct {
		format string
		args   []any
	}{
		{"Rect: top=%d left=%d bottom=%d right=%d", []any{r.Top, r.Left, r.Bottom, r.Right}},
		{"Size: %dx%d", []any{r.Width(), r.Height()}},
		{"Default color: %d", []any{r.DefaultColor}},
		{"Flags: %s", []any{p.flagsText(r.Flags)}},
		{"Density: %d", []any{r.Density}},
		{"Feather: %s", []any{strconv.FormatFloat(r.Feather, 'g', -1, 64)}},
	}
	for _, l := range lines {
		if err := p.line(level, l.format, l.args...); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) flagsText(f mask.Flags) string {
	if !p.opts.ShowFlags {
		return fmt.Sprintf("0x%02x", uint8(f))
	}
	return fmt.Sprintf("0x%02x (%s)", uint8(f), f)
}

func (p *Printer) printExtraText(ed layer.ExtraData) error {
	if err := p.line(0, "Name: %q", ed.Name); err != nil {
		return err
	}
	if err := p.line(0, "Mask:"); err != nil {
		return err
	}
	if err := p.printSectionText(ed.Mask, 1); err != nil {
		return err
	}
	if err := p.line(0, "Blending ranges:"); err != nil {
		return err
	}
	if ed.Blending.Composite == nil {
		if err := p.line(1, "(none)"); err != nil {
			return err
		}
	} else {
		if err := p.line(1, "Composite: %s", blendText(*ed.Blending.Composite)); err != nil {
			return err
		}
		for i, ch := range ed.Blending.Channels {
			if err := p.line(1, "Channel %d: %s", i, blendText(ch)); err != nil {
				return err
			}
		}
	}
	return p.line(0, "Additional info: %d bytes", len(ed.AdditionalInfo))
}

func blendText(b layer.BlendRange) string {
	return fmt.Sprintf("src %d-%d..%d-%d dst %d-%d..%d-%d",
		b.Source.Black[0], b.Source.Black[1], b.Source.White[0], b.Source.White[1],
		b.Dest.Black[0], b.Dest.Black[1], b.Dest.White[0], b.Dest.White[1])
}
