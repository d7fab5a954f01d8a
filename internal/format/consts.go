// Package format houses the constants and primitive codecs for the layer mask
// section of the layered image document format. Multi-byte values in this
// format are big-endian.
package format

// Mask record flag bits (the record's "flags" byte).
const (
	// MaskFlagRelative marks the rectangle as relative to the layer origin.
	MaskFlagRelative uint8 = 1 << 0
	// MaskFlagDisabled marks the mask as not applied.
	MaskFlagDisabled uint8 = 1 << 1
	// MaskFlagInvert inverts the mask when blending. Obsolete.
	MaskFlagInvert uint8 = 1 << 2
	// MaskFlagFromRendering indicates the user mask came from rendering other data.
	MaskFlagFromRendering uint8 = 1 << 3
	// MaskFlagHasParameters indicates a parameter block follows the records.
	MaskFlagHasParameters uint8 = 1 << 4
)

// Parameter block flag bits. Each set bit gates one trailing field, in bit order.
const (
	ParamRasterDensity uint8 = 1 << 0 // u8
	ParamRasterFeather uint8 = 1 << 1 // f64
	ParamVectorDensity uint8 = 1 << 2 // u8
	ParamVectorFeather uint8 = 1 << 3 // f64
)

const (
	// LengthPrefixSize is the size of the u32 length prefix of every
	// length-delimited section.
	LengthPrefixSize = 4

	// MaskMinStructuredLen is the smallest declared section length that is
	// decoded; anything shorter is skipped as "no mask".
	MaskMinStructuredLen = 16

	// MaskRectSize is four i32 values: top, left, bottom, right.
	MaskRectSize = 16

	// MaskRecordSize is a rectangle plus the color and flags bytes.
	MaskRecordSize = MaskRectSize + 2

	// MaskDefaultDensity is the density used when no parameter block is present.
	MaskDefaultDensity uint8 = 255
)

const (
	// BlendRangeSize is one source/destination pair of black/white ranges.
	BlendRangeSize = 8

	// NamePadding is the alignment of the Pascal layer name, length byte included.
	NamePadding = 4
)
