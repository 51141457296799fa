package parse

import (
	"errors"
	"fmt"
)

// ErrNoIDs is returned when an ID argument list contains no IDs at all, as
// opposed to containing a piece that fails to parse.
var ErrNoIDs = errors.New("no task IDs given")

// ParseError reports a rejected raw input value. The offending input is kept
// so callers can echo it back to the user.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}
