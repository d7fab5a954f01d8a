// Package cursor provides a sequential big-endian reader over an in-memory
// byte buffer. It is the only data access primitive used by the psd decoders.
//
// Every read either consumes exactly the requested bytes or fails with an
// error wrapping format.ErrTruncated and leaves the position untouched.
package cursor

import (
	"fmt"

	"github.com/joshuapare/psdkit/internal/buf"
	"github.com/joshuapare/psdkit/internal/format"
)

// Cursor reads fixed-width values from b starting at pos.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	b   []byte
	pos int
}

// New returns a cursor positioned at the start of b.
func New(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total size of the underlying buffer.
func (c *Cursor) Len() int { return len(c.b) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.b) - c.pos }

// take returns the next n bytes and advances past them.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("cursor: read %d bytes at %d: %w", n, c.pos, format.ErrNegativeLength)
	}
	s, ok := buf.Slice(c.b, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("cursor: read %d bytes at %d (have %d): %w",
			n, c.pos, c.Remaining(), format.ErrTruncated)
	}
	c.pos += n
	return s, nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadU8() (uint8, error) {
	s, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// ReadU32 reads a big-endian unsigned 32-bit integer.
func (c *Cursor) ReadU32() (uint32, error) {
	s, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return buf.U32BE(s), nil
}

// ReadI32 reads a big-endian signed 32-bit integer.
func (c *Cursor) ReadI32() (int32, error) {
	s, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return buf.I32BE(s), nil
}

// ReadF64 reads a big-endian IEEE 754 double.
func (c *Cursor) ReadF64() (float64, error) {
	s, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return buf.F64BE(s), nil
}

// ReadBytes returns the next n bytes without copying. The result aliases the
// underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	return c.take(n)
}

// Skip discards the next n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.take(n)
	return err
}

// Limit returns a cursor over the next n bytes. Reads through the returned
// cursor cannot cross that bound. The receiver does not move; callers Skip(n)
// once they are done with the child.
func (c *Cursor) Limit(n int) (*Cursor, error) {
	if n < 0 {
		return nil, fmt.Errorf("cursor: limit %d bytes at %d: %w", n, c.pos, format.ErrNegativeLength)
	}
	s, ok := buf.Slice(c.b, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("cursor: limit %d bytes at %d (have %d): %w",
			n, c.pos, c.Remaining(), format.ErrTruncated)
	}
	return &Cursor{b: s}, nil
}

// LimitU32 is Limit for a length read from the stream as a u32. Lengths that
// do not fit in an int are reported as truncated.
func (c *Cursor) LimitU32(n uint32) (*Cursor, error) {
	if uint64(n) > uint64(c.Remaining()) {
		return nil, fmt.Errorf("cursor: limit %d bytes at %d (have %d): %w",
			n, c.pos, c.Remaining(), format.ErrTruncated)
	}
	return c.Limit(int(n))
}
