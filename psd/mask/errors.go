package mask

import "errors"

// ErrTruncatedSection indicates the section could not be decoded because a
// read ran past the available or declared bytes.
var ErrTruncatedSection = errors.New("mask: truncated or malformed section")
