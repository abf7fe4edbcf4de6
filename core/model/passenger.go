package model

import "fmt"

// PassengerStatus tracks where a passenger is in its request lifecycle.
type PassengerStatus int

const (
	Waiting PassengerStatus = iota
	Cancelled
	Satisfied
)

// String returns a human-readable representation of the status.
func (s PassengerStatus) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Cancelled:
		return "cancelled"
	case Satisfied:
		return "satisfied"
	default:
		return "unknown"
	}
}

// Passenger is a rider requesting a trip from Origin to Destination.
// Patience is the number of ticks the passenger waits before cancelling.
type Passenger struct {
	ID          string
	Patience    int
	Origin      Location
	Destination Location
	status      PassengerStatus
}

// NewPassenger returns a waiting passenger. Patience must not be negative.
func NewPassenger(id string, patience int, origin, destination Location) (*Passenger, error) {
	if patience < 0 {
		return nil, fmt.Errorf("passenger %s: patience must not be negative", id)
	}
	return &Passenger{ID: id, Patience: patience, Origin: origin, Destination: destination}, nil
}

// Status returns the current status.
func (p *Passenger) Status() PassengerStatus { return p.status }

// SetStatus moves a waiting passenger to a terminal status. Status changes are
// one-way: any transition that does not start from Waiting panics.
func (p *Passenger) SetStatus(s PassengerStatus) {
	if p.status != Waiting || s == Waiting {
		panic(fmt.Sprintf("passenger %s: invalid status transition %s -> %s", p.ID, p.status, s))
	}
	p.status = s
}

// Equal reports whether both passengers hold the same values.
func (p *Passenger) Equal(o *Passenger) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.ID == o.ID && p.Patience == o.Patience && p.Origin == o.Origin &&
		p.Destination == o.Destination && p.status == o.status
}

func (p *Passenger) String() string { return p.ID }
