package layer

import "errors"

// ErrTruncatedExtraData indicates the extra data field, or one of its parts,
// ran past the available or declared bytes.
var ErrTruncatedExtraData = errors.New("layer: truncated extra data")
