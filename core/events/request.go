package events

import (
	"fmt"

	"github.com/kilianp07/ridesim/core/dispatch"
	"github.com/kilianp07/ridesim/core/model"
	"github.com/kilianp07/ridesim/core/monitor"
)

// PassengerRequest is issued when a passenger asks for a ride.
type PassengerRequest struct {
	base
	Passenger *model.Passenger
}

// NewPassengerRequest returns a request for p at ts.
func NewPassengerRequest(ts int, p *model.Passenger) *PassengerRequest {
	return &PassengerRequest{base: base{ts: ts}, Passenger: p}
}

func (e *PassengerRequest) Kind() Kind { return KindPassengerRequest }

// Execute matches the passenger with a driver when one is available and
// always schedules the cancellation that fires once patience runs out. A
// cancellation reaching a passenger who is no longer waiting does nothing.
func (e *PassengerRequest) Execute(d *dispatch.Dispatcher, m *monitor.Monitor) []Event {
	p := e.Passenger
	m.Notify(e.ts, monitor.Passenger, monitor.Request, p.ID, p.Origin)

	var out []Event
	if drv := d.RequestDriver(p); drv != nil {
		tt := drv.StartDrive(p.Origin)
		out = append(out, NewPickup(e.ts+tt, p, drv))
	}
	return append(out, NewCancellation(e.ts+p.Patience, p))
}

func (e *PassengerRequest) String() string {
	return fmt.Sprintf("%d -- %s: Request a driver", e.ts, e.Passenger.ID)
}

// DriverRequest is issued when a driver becomes available.
type DriverRequest struct {
	base
	Driver *model.Driver
}

// NewDriverRequest returns a request for drv at ts.
func NewDriverRequest(ts int, drv *model.Driver) *DriverRequest {
	return &DriverRequest{base: base{ts: ts}, Driver: drv}
}

func (e *DriverRequest) Kind() Kind { return KindDriverRequest }

// Execute registers the driver and, if a passenger is waiting, sends the
// driver towards them.
func (e *DriverRequest) Execute(d *dispatch.Dispatcher, m *monitor.Monitor) []Event {
	drv := e.Driver
	m.Notify(e.ts, monitor.Driver, monitor.Request, drv.ID, drv.Location)

	p := d.RequestPassenger(drv)
	if p == nil {
		return nil
	}
	tt := drv.StartDrive(p.Origin)
	return []Event{NewPickup(e.ts+tt, p, drv)}
}

func (e *DriverRequest) String() string {
	return fmt.Sprintf("%d -- %s: Request a passenger", e.ts, e.Driver.ID)
}
