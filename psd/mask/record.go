package mask

import (
	"strings"

	"github.com/joshuapare/psdkit/internal/format"
)

// Flags is the per-record flag byte.
type Flags uint8

// PositionRelativeToLayer reports whether the rectangle is relative to the layer origin (bit 0).
func (f Flags) PositionRelativeToLayer() bool { return uint8(f)&format.MaskFlagRelative != 0 }

// Disabled reports whether the mask is not applied (bit 1).
func (f Flags) Disabled() bool { return uint8(f)&format.MaskFlagDisabled != 0 }

// InvertWhenBlending reports the obsolete invert-on-blend bit (bit 2).
func (f Flags) InvertWhenBlending() bool { return uint8(f)&format.MaskFlagInvert != 0 }

// RenderedFromOtherData reports whether the user mask is a by-product of
// rendering other layer data rather than user authored (bit 3).
func (f Flags) RenderedFromOtherData() bool { return uint8(f)&format.MaskFlagFromRendering != 0 }

// HasParameters reports whether a parameter block follows the records (bit 4).
func (f Flags) HasParameters() bool { return uint8(f)&format.MaskFlagHasParameters != 0 }

var flagNames = []struct {
	bit  uint8
	name string
}{
	{format.MaskFlagRelative, "relative"},
	{format.MaskFlagDisabled, "disabled"},
	{format.MaskFlagInvert, "invert"},
	{format.MaskFlagFromRendering, "rendered"},
	{format.MaskFlagHasParameters, "parameters"},
}

// String lists the names of the set bits, e.g. "relative|disabled".
// Unknown bits are ignored; an empty set renders as "none".
func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if uint8(f)&fn.bit != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Record describes one mask. Top/Left are inclusive, Bottom/Right exclusive.
type Record struct {
	Top, Left, Bottom, Right int32

	// DefaultColor fills the area outside the rectangle.
	DefaultColor uint8
	Flags        Flags

	Density uint8
	Feather float64
}

// Height returns Bottom - Top. The result is negative for an inverted rectangle.
func (r Record) Height() int32 { return r.Bottom - r.Top }

// Width returns Right - Left.
func (r Record) Width() int32 { return r.Right - r.Left }

// Section is the decoded mask section of one layer. Either mask may be nil.
type Section struct {
	Vector *Record
	Raster *Record
}

// Empty reports whether the section carried no mask at all.
func (s Section) Empty() bool { return s.Vector == nil && s.Raster == nil }
