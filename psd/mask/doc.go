// Package mask decodes the layer mask / adjustment layer data section of a
// layer record.
//
// # Section Layout
//
// Offsets are relative to the start of the section. Multi-byte values are
// big-endian.
//
//	Offset  Size  Field
//	------  ----  -----
//	0       4     declared length (bytes that follow)
//	4       16    top, left, bottom, right (i32 x4), record 1
//	20      1     default color, record 1
//	21      1     flags, record 1
//	22      1     flags, record 2          (only if >= 18 bytes remain)
//	23      1     default color, record 2
//	24      16    top, left, bottom, right, record 2
//	...     1     parameter flags          (only if record 1 has parameters)
//	...     1/8   density / feather fields, one per set parameter bit
//	...     rest  padding, skipped
//
// A declared length below 16 (normally 0 or 4) means "no mask": the bytes are
// skipped and an empty Section is returned.
//
// # Classification
//
// When two records are present the first is the vector mask and the second is
// the raster (user) mask. A lone record is the vector mask if its
// RenderedFromOtherData flag is set and the raster mask otherwise.
//
// # Density and Feather
//
// Without a parameter block every mask has density 255 and feather 0. With a
// parameter block, each value comes from its gated field and ungated values
// are 0.
//
// # Errors
//
// Every failure is reported as ErrTruncatedSection, wrapping the cursor error
// (which itself wraps format.ErrTruncated). Reads never cross the declared
// section end, so a declared length that is too short for the structure it
// announces fails the same way. No partial result is ever returned.
//
// Example:
//
//	c := cursor.New(extra)
//	sec, err := mask.Decode(c)
//	if err != nil {
//	    return fmt.Errorf("layer %d: %w", i, err)
//	}
//	if sec.Raster != nil && !sec.Raster.Flags.Disabled() {
//	    fmt.Println("user mask height", sec.Raster.Height())
//	}
package mask
