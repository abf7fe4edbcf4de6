package scenario

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEvent is returned for an event type other than DriverRequest
	// or PassengerRequest.
	ErrUnknownEvent = errors.New("unknown event type")
	// ErrFieldCount is returned when a line has the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")
)

// ParseError reports a malformed line of a text scenario.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
