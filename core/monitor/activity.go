package monitor

import (
	"fmt"

	"github.com/kilianp07/ridesim/core/model"
)

// ActorKind identifies who performed an activity.
type ActorKind int

const (
	Driver ActorKind = iota
	Passenger
)

// String returns a human-readable representation of the actor kind.
func (k ActorKind) String() string {
	switch k {
	case Driver:
		return "driver"
	case Passenger:
		return "passenger"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ActorKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ActorKind) UnmarshalText(b []byte) error {
	v, err := ParseActorKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseActorKind converts "driver" or "passenger" to an ActorKind.
func ParseActorKind(s string) (ActorKind, error) {
	switch s {
	case "driver":
		return Driver, nil
	case "passenger":
		return Passenger, nil
	default:
		return 0, fmt.Errorf("unknown actor kind %q", s)
	}
}

// ActionKind identifies what happened.
type ActionKind int

const (
	Request ActionKind = iota
	Pickup
	Dropoff
	Cancel
)

// String returns a human-readable representation of the action kind.
func (a ActionKind) String() string {
	switch a {
	case Request:
		return "request"
	case Pickup:
		return "pickup"
	case Dropoff:
		return "dropoff"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a ActionKind) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ActionKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "request":
		*a = Request
	case "pickup":
		*a = Pickup
	case "dropoff":
		*a = Dropoff
	case "cancel":
		*a = Cancel
	default:
		return fmt.Errorf("unknown action kind %q", string(b))
	}
	return nil
}

// Activity is one entry of the monitor log.
type Activity struct {
	Timestamp int            `json:"timestamp"`
	Actor     ActorKind      `json:"actor"`
	Action    ActionKind     `json:"action"`
	ActorID   string         `json:"actor_id"`
	Location  model.Location `json:"location"`
}

// ActivityRecorder receives every activity as soon as it is logged.
type ActivityRecorder interface {
	RecordActivity(a Activity) error
}
