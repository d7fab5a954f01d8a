package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a read.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrNegativeLength indicates a read or skip was asked for a negative byte count.
	ErrNegativeLength = errors.New("format: negative length")
)
