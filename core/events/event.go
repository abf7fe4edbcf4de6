package events

import (
	"github.com/kilianp07/ridesim/core/dispatch"
	"github.com/kilianp07/ridesim/core/monitor"
)

// Kind names an event variant.
type Kind int

const (
	KindPassengerRequest Kind = iota
	KindDriverRequest
	KindCancellation
	KindPickup
	KindDropoff
)

// Kinds lists every event kind in declaration order.
var Kinds = []Kind{KindPassengerRequest, KindDriverRequest, KindCancellation, KindPickup, KindDropoff}

// String returns a human-readable representation of the event kind.
func (k Kind) String() string {
	switch k {
	case KindPassengerRequest:
		return "PassengerRequest"
	case KindDriverRequest:
		return "DriverRequest"
	case KindCancellation:
		return "Cancellation"
	case KindPickup:
		return "Pickup"
	case KindDropoff:
		return "Dropoff"
	default:
		return "unknown"
	}
}

// Event is a timestamped state transition. The set of implementations is
// closed; switch on the concrete type to inspect one.
type Event interface {
	Timestamp() int
	Kind() Kind
	// Execute applies the transition and returns the events it schedules.
	Execute(d *dispatch.Dispatcher, m *monitor.Monitor) []Event
	String() string
	isEvent()
}

// Less orders events by timestamp.
func Less(a, b Event) bool { return a.Timestamp() < b.Timestamp() }

type base struct {
	ts int
}

func (b base) Timestamp() int { return b.ts }
func (base) isEvent()         {}
