package mask

import (
	"fmt"

	"github.com/joshuapare/psdkit/internal/format"
	"github.com/joshuapare/psdkit/psd/cursor"
)

// rawRecord is a record as read from the stream, before density and feather
// are known.
type rawRecord struct {
	top, left, bottom, right int32
	color                    uint8
	flags                    Flags
}

func (r rawRecord) finish(density uint8, feather float64) *Record {
	return &Record{
		Top:          r.top,
		Left:         r.left,
		Bottom:       r.bottom,
		Right:        r.right,
		DefaultColor: r.color,
		Flags:        r.flags,
		Density:      density,
		Feather:      feather,
	}
}

// params holds the per-mask overrides of the parameter block.
type params struct {
	rasterDensity, vectorDensity uint8
	rasterFeather, vectorFeather float64
}

var noParams = params{
	rasterDensity: format.MaskDefaultDensity,
	vectorDensity: format.MaskDefaultDensity,
}

// Decode reads one mask section from c, starting at its u32 length prefix.
// On success c is positioned just past the section. On error the result is
// empty and the position of c is unspecified.
func Decode(c *cursor.Cursor) (Section, error) {
	declared, err := c.ReadU32()
	if err != nil {
		return Section{}, fmt.Errorf("%w: length: %w", ErrTruncatedSection, err)
	}
	body, err := c.LimitU32(declared)
	if err != nil {
		return Section{}, fmt.Errorf("%w: %w", ErrTruncatedSection, err)
	}

	sec, err := decodeBody(body)
	if err != nil {
		return Section{}, fmt.Errorf("%w: %w", ErrTruncatedSection, err)
	}
	if err := c.Skip(body.Len()); err != nil {
		return Section{}, fmt.Errorf("%w: %w", ErrTruncatedSection, err)
	}
	return sec, nil
}

// decodeBody decodes the bytes after the length prefix. c is bounded to the
// declared length.
func decodeBody(c *cursor.Cursor) (Section, error) {
	if c.Len() < format.MaskMinStructuredLen {
		return Section{}, c.Skip(c.Remaining())
	}

	first, err := readFirstRecord(c)
	if err != nil {
		return Section{}, fmt.Errorf("record 1: %w", err)
	}

	var second *rawRecord
	if c.Remaining() >= format.MaskRecordSize {
		r, err := readSecondRecord(c)
		if err != nil {
			return Section{}, fmt.Errorf("record 2: %w", err)
		}
		second = &r
	}

	p := noParams
	if first.flags.HasParameters() {
		if p, err = readParams(c); err != nil {
			return Section{}, fmt.Errorf("parameters: %w", err)
		}
	}

	// Padding and unknown trailing data.
	if err := c.Skip(c.Remaining()); err != nil {
		return Section{}, err
	}

	vector, raster := classify(first, second)
	var sec Section
	if vector != nil {
		sec.Vector = vector.finish(p.vectorDensity, p.vectorFeather)
	}
	if raster != nil {
		sec.Raster = raster.finish(p.rasterDensity, p.rasterFeather)
	}
	return sec, nil
}

// classify assigns the decoded records to the vector and raster slots.
// With a single record the rendered-from-other-data bit decides, whatever
// the record otherwise looks like.
func classify(first rawRecord, second *rawRecord) (vector, raster *rawRecord) {
	if second != nil {
		return &first, second
	}
	if first.flags.RenderedFromOtherData() {
		return &first, nil
	}
	return nil, &first
}

func readRect(c *cursor.Cursor, r *rawRecord) error {
	for _, dst := range []*int32{&r.top, &r.left, &r.bottom, &r.right} {
		v, err := c.ReadI32()
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}

// readFirstRecord reads rectangle, color, flags.
func readFirstRecord(c *cursor.Cursor) (rawRecord, error) {
	var r rawRecord
	if err := readRect(c, &r); err != nil {
		return rawRecord{}, err
	}
	color, err := c.ReadU8()
	if err != nil {
		return rawRecord{}, err
	}
	flags, err := c.ReadU8()
	if err != nil {
		return rawRecord{}, err
	}
	r.color, r.flags = color, Flags(flags)
	return r, nil
}

// readSecondRecord reads flags, color, rectangle. The order differs from the
// first record.
func readSecondRecord(c *cursor.Cursor) (rawRecord, error) {
	var r rawRecord
	flags, err := c.ReadU8()
	if err != nil {
		return rawRecord{}, err
	}
	color, err := c.ReadU8()
	if err != nil {
		return rawRecord{}, err
	}
	r.flags, r.color = Flags(flags), color
	if err := readRect(c, &r); err != nil {
		return rawRecord{}, err
	}
	return r, nil
}

// readParams reads the parameter flag byte and the fields it gates.
// Ungated fields stay zero.
func readParams(c *cursor.Cursor) (params, error) {
	var p params
	bits, err := c.ReadU8()
	if err != nil {
		return params{}, err
	}
	if bits&format.ParamRasterDensity != 0 {
		if p.rasterDensity, err = c.ReadU8(); err != nil {
			return params{}, err
		}
	}
	if bits&format.ParamRasterFeather != 0 {
		if p.rasterFeather, err = c.ReadF64(); err != nil {
			return params{}, err
		}
	}
	if bits&format.ParamVectorDensity != 0 {
		if p.vectorDensity, err = c.ReadU8(); err != nil {
			return params{}, err
		}
	}
	if bits&format.ParamVectorFeather != 0 {
		if p.vectorFeather, err = c.ReadF64(); err != nil {
			return params{}, err
		}
	}
	return p, nil
}
