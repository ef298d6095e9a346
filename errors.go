package pathy

import (
	"errors"
	"fmt"
)

// LookupError reports a key segment with no corresponding entry, or an
// index out of bounds. It propagates to the immediate non-broadcast caller
// and is absorbed by any enclosing broadcast.
type LookupError struct {
	Path    string // location of the value that was queried
	Segment string // the offending segment
	Message string
}

func (e *LookupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("lookup error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("lookup error: %s", e.Message)
}

// ShapeError reports a segment requiring a capability (associative access,
// ordered access) the current value does not have. It propagates and is
// absorbed exactly like a LookupError.
type ShapeError struct {
	Path     string
	Segment  string
	Expected string
	Actual   string
}

func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	if e.Segment != "" {
		msg = fmt.Sprintf("segment %s: %s", e.Segment, msg)
	}
	if e.Path != "" {
		return fmt.Sprintf("shape error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("shape error: %s", msg)
}

// skippable is the broadcaster's skip policy: the two structural failure
// kinds are absorbed per-element, anything else would propagate.
func skippable(err error) bool {
	var le *LookupError
	var se *ShapeError
	return errors.As(err, &le) || errors.As(err, &se)
}
