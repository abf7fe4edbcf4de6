package model

import (
	"fmt"
	"math"
)

// Driver is a vehicle in the ride-sharing fleet. Location only changes when a
// drive or trip ends; while a destination is set the driver is in motion.
type Driver struct {
	ID       string
	Location Location
	IsIdle   bool

	speed       int
	destination *Location
	passenger   *Passenger
}

// NewDriver returns an idle driver at loc. Speed must be positive.
func NewDriver(id string, loc Location, speed int) (*Driver, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("driver %s: speed must be positive", id)
	}
	return &Driver{ID: id, Location: loc, IsIdle: true, speed: speed}, nil
}

// MustDriver is like NewDriver but panics on invalid input.
func MustDriver(id string, loc Location, speed int) *Driver {
	d, err := NewDriver(id, loc, speed)
	if err != nil {
		panic(err)
	}
	return d
}

// Speed returns the grid cells travelled per tick.
func (d *Driver) Speed() int { return d.speed }

// Destination returns the current destination or nil when idle.
func (d *Driver) Destination() *Location { return d.destination }

// Passenger returns the passenger on board, if any.
func (d *Driver) Passenger() *Passenger { return d.passenger }

// TravelTime returns the ticks needed to reach dest, rounded half to even.
func (d *Driver) TravelTime(dest Location) int {
	dist := float64(ManhattanDistance(d.Location, dest))
	return int(math.RoundToEven(dist / float64(d.speed)))
}

// StartDrive sends the driver towards loc and returns the travel time.
func (d *Driver) StartDrive(loc Location) int {
	d.IsIdle = false
	dest := loc
	d.destination = &dest
	return d.TravelTime(loc)
}

// EndDrive moves the driver to its destination.
func (d *Driver) EndDrive() {
	d.arrive("EndDrive")
}

// StartTrip boards p at its origin, heads for its destination and returns
// the trip duration.
func (d *Driver) StartTrip(p *Passenger) int {
	d.Location = p.Origin
	dest := p.Destination
	d.destination = &dest
	d.passenger = p
	d.IsIdle = false
	return d.TravelTime(dest)
}

// EndTrip drops the passenger at the destination.
func (d *Driver) EndTrip() {
	d.arrive("EndTrip")
	d.passenger = nil
}

func (d *Driver) arrive(op string) {
	if d.destination == nil {
		panic(fmt.Sprintf("driver %s: %s without destination", d.ID, op))
	}
	d.Location = *d.destination
	d.destination = nil
	d.IsIdle = true
}

// Equal reports whether both drivers hold the same values.
func (d *Driver) Equal(o *Driver) bool {
	if d == nil || o == nil {
		return d == o
	}
	sameDest := (d.destination == nil) == (o.destination == nil)
	if sameDest && d.destination != nil {
		sameDest = *d.destination == *o.destination
	}
	return d.ID == o.ID && d.Location == o.Location && d.speed == o.speed &&
		d.IsIdle == o.IsIdle && sameDest && d.passenger.Equal(o.passenger)
}

func (d *Driver) String() string {
	dest := "none"
	if d.destination != nil {
		dest = d.destination.String()
	}
	pass := "none"
	if d.passenger != nil {
		pass = d.passenger.ID
	}
	return fmt.Sprintf("id: %s, location: %s, speed: %d, idle: %t, destination: %s, passenger: %s",
		d.ID, d.Location, d.speed, d.IsIdle, dest, pass)
}
