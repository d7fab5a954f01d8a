package layer

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/psdkit/internal/format"
	"github.com/joshuapare/psdkit/psd/cursor"
	"github.com/joshuapare/psdkit/psd/mask"
)

// Range is a pair of black values followed by a pair of white values.
type Range struct {
	Black [2]uint8
	White [2]uint8
}

// BlendRange is the source and destination range of one channel.
type BlendRange struct {
	Source Range
	Dest   Range
}

// BlendingRanges holds the composite gray range and one range per channel.
// Composite is nil when the block is empty.
type BlendingRanges struct {
	Composite *BlendRange
	Channels  []BlendRange
}

// ExtraData is the decoded extra data field of one layer record.
type ExtraData struct {
	Mask     mask.Section
	Blending BlendingRanges
	Name     string

	// AdditionalInfo aliases the input buffer.
	AdditionalInfo []byte
}

// DecodeExtraData reads one extra data field from c, starting at its u32
// length prefix. On success c is positioned just past the field.
func DecodeExtraData(c *cursor.Cursor) (ExtraData, error) {
	n, err := c.ReadU32()
	if err != nil {
		return ExtraData{}, fmt.Errorf("%w: length: %w", ErrTruncatedExtraData, err)
	}
	body, err := c.LimitU32(n)
	if err != nil {
		return ExtraData{}, fmt.Errorf("%w: %w", ErrTruncatedExtraData, err)
	}

	var ed ExtraData
	if ed.Mask, err = mask.Decode(body); err != nil {
		return ExtraData{}, fmt.Errorf("%w: %w", ErrTruncatedExtraData, err)
	}
	if ed.Blending, err = readBlendingRanges(body); err != nil {
		return ExtraData{}, fmt.Errorf("%w: blending ranges: %w", ErrTruncatedExtraData, err)
	}
	if ed.Name, err = readPascalName(body); err != nil {
		return ExtraData{}, fmt.Errorf("%w: name: %w", ErrTruncatedExtraData, err)
	}
	if ed.AdditionalInfo, err = body.ReadBytes(body.Remaining()); err != nil {
		return ExtraData{}, fmt.Errorf("%w: %w", ErrTruncatedExtraData, err)
	}

	if err := c.Skip(body.Len()); err != nil {
		return ExtraData{}, fmt.Errorf("%w: %w", ErrTruncatedExtraData, err)
	}
	return ed, nil
}

func readBlendingRanges(c *cursor.Cursor) (BlendingRanges, error) {
	n, err := c.ReadU32()
	if err != nil {
		return BlendingRanges{}, err
	}
	raw, err := c.LimitU32(n)
	if err != nil {
		return BlendingRanges{}, err
	}
	if err := c.Skip(raw.Len()); err != nil {
		return BlendingRanges{}, err
	}

	// A trailing partial range is ignored.
	var ranges []BlendRange
	for raw.Remaining() >= format.BlendRangeSize {
		b, err := raw.ReadBytes(format.BlendRangeSize)
		if err != nil {
			return BlendingRanges{}, err
		}
		ranges = append(ranges, BlendRange{
			Source: Range{Black: [2]uint8{b[0], b[1]}, White: [2]uint8{b[2], b[3]}},
			Dest:   Range{Black: [2]uint8{b[4], b[5]}, White: [2]uint8{b[6], b[7]}},
		})
	}
	if len(ranges) == 0 {
		return BlendingRanges{}, nil
	}
	return BlendingRanges{Composite: &ranges[0], Channels: ranges[1:]}, nil
}

// readPascalName reads a length-prefixed Mac Roman string whose total size,
// length byte included, is padded to a multiple of 4.
func readPascalName(c *cursor.Cursor) (string, error) {
	n, err := c.ReadU8()
	if err != nil {
		return "", err
	}
	raw, err := c.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if pad := format.PadTo(1+int(n), format.NamePadding) - (1 + int(n)); pad > 0 {
		if err := c.Skip(pad); err != nil {
			return "", err
		}
	}
	decoded, err := charmap.Macintosh.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
