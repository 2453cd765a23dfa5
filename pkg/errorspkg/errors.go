// Package errorspkg provides errors shared by the delivery layers.
package errorspkg

import "errors"

// ErrInternal is reported to callers in place of any unexpected failure.
var ErrInternal = errors.New("internal server error")
