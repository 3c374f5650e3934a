package breaks

import "errors"

// ErrUnknownStyle is returned when a RangeStyle name or value is not recognised.
var ErrUnknownStyle = errors.New("breaks: unknown range style")
