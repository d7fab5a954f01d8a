package mask

import (
	"github.com/joshuapare/psdkit/internal/format"
)

// body accumulates section bytes after the length prefix.
type body struct {
	b []byte
}

func (s *body) u8(vs ...uint8) *body {
	s.b = append(s.b, vs...)
	return s
}

func (s *body) i32(vs ...int32) *body {
	for _, v := range vs {
		var tmp [4]byte
		format.PutI32(tmp[:], 0, v)
		s.b = append(s.b, tmp[:]...)
	}
	return s
}

func (s *body) f64(v float64) *body {
	var tmp [8]byte
	format.PutF64(tmp[:], 0, v)
	s.b = append(s.b, tmp[:]...)
	return s
}

func (s *body) pad(n int, fill uint8) *body {
	for i := 0; i < n; i++ {
		s.b = append(s.b, fill)
	}
	return s
}

// firstRecord appends rectangle, color, flags.
func (s *body) firstRecord(top, left, bottom, right int32, color, flags uint8) *body {
	return s.i32(top, left, bottom, right).u8(color, flags)
}

// secondRecord appends flags, color, rectangle.
func (s *body) secondRecord(top, left, bottom, right int32, color, flags uint8) *body {
	return s.u8(flags, color).i32(top, left, bottom, right)
}

// section prefixes the body with its actual length.
func (s *body) section() []byte {
	return s.sectionDeclaring(uint32(len(s.b)))
}

// sectionDeclaring prefixes the body with an arbitrary declared length.
func (s *body) sectionDeclaring(declared uint32) []byte {
	out := make([]byte, format.LengthPrefixSize, format.LengthPrefixSize+len(s.b))
	format.PutU32(out, 0, declared)
	return append(out, s.b...)
}
