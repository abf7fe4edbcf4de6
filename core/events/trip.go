package events

import (
	"fmt"

	"github.com/kilianp07/ridesim/core/dispatch"
	"github.com/kilianp07/ridesim/core/model"
	"github.com/kilianp07/ridesim/core/monitor"
)

// Cancellation fires when a passenger's patience runs out.
type Cancellation struct {
	base
	Passenger *model.Passenger
}

// NewCancellation returns a cancellation for p at ts.
func NewCancellation(ts int, p *model.Passenger) *Cancellation {
	return &Cancellation{base: base{ts: ts}, Passenger: p}
}

func (e *Cancellation) Kind() Kind { return KindCancellation }

// Execute cancels the request if the passenger is still waiting.
func (e *Cancellation) Execute(d *dispatch.Dispatcher, m *monitor.Monitor) []Event {
	p := e.Passenger
	if p.Status() != model.Waiting {
		return nil
	}
	p.SetStatus(model.Cancelled)
	m.Notify(e.ts, monitor.Passenger, monitor.Cancel, p.ID, p.Origin)
	d.CancelRide(p)
	return nil
}

func (e *Cancellation) String() string {
	return fmt.Sprintf("%d -- %s: Cancel request", e.ts, e.Passenger.ID)
}

// Pickup fires when a driver reaches a passenger's origin.
type Pickup struct {
	base
	Passenger *model.Passenger
	Driver    *model.Driver
}

// NewPickup returns a pickup of p by drv at ts.
func NewPickup(ts int, p *model.Passenger, drv *model.Driver) *Pickup {
	return &Pickup{base: base{ts: ts}, Passenger: p, Driver: drv}
}

func (e *Pickup) Kind() Kind { return KindPickup }

// Execute starts the trip when the passenger is still waiting. If the
// passenger already cancelled, the driver immediately looks for someone else.
func (e *Pickup) Execute(_ *dispatch.Dispatcher, m *monitor.Monitor) []Event {
	drv, p := e.Driver, e.Passenger
	drv.EndDrive()
	m.Notify(e.ts, monitor.Driver, monitor.Pickup, drv.ID, drv.Location)

	if p.Status() != model.Waiting {
		return []Event{NewDriverRequest(e.ts, drv)}
	}
	m.Notify(e.ts, monitor.Passenger, monitor.Pickup, p.ID, p.Origin)
	tt := drv.StartTrip(p)
	p.SetStatus(model.Satisfied)
	return []Event{NewDropoff(e.ts+tt, p, drv)}
}

func (e *Pickup) String() string {
	return fmt.Sprintf("%d -- %s: Pick up %s", e.ts, e.Driver.ID, e.Passenger.ID)
}

// Dropoff fires when a driver reaches a passenger's destination.
type Dropoff struct {
	base
	Passenger *model.Passenger
	Driver    *model.Driver
}

// NewDropoff returns a dropoff of p by drv at ts.
func NewDropoff(ts int, p *model.Passenger, drv *model.Driver) *Dropoff {
	return &Dropoff{base: base{ts: ts}, Passenger: p, Driver: drv}
}

func (e *Dropoff) Kind() Kind { return KindDropoff }

// Execute ends the trip and puts the driver back in the pool.
func (e *Dropoff) Execute(_ *dispatch.Dispatcher, m *monitor.Monitor) []Event {
	drv := e.Driver
	drv.EndTrip()
	m.Notify(e.ts, monitor.Driver, monitor.Dropoff, drv.ID, drv.Location)
	return []Event{NewDriverRequest(e.ts, drv)}
}

func (e *Dropoff) String() string {
	return fmt.Sprintf("%d -- %s: Drop off %s", e.ts, e.Driver.ID, e.Passenger.ID)
}
