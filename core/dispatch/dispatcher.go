package dispatch

import (
	"github.com/kilianp07/ridesim/core/logger"
	"github.com/kilianp07/ridesim/core/model"
)

// Dispatcher pairs passengers with drivers.
//
// Drivers register the first time they ask for a passenger and stay registered
// for the rest of the run. Passengers that cannot be served immediately wait
// in an ordered list until a driver asks for one or their request is cancelled.
//
// Matching is intentionally asymmetric: a passenger gets the nearest driver by
// travel time, while a driver gets the most recently queued passenger.
type Dispatcher struct {
	cfg     Config
	log     logger.Logger
	drivers map[string]*model.Driver
	order   []*model.Driver
	waiting []*model.Passenger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig applies dispatch settings.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) { d.cfg = cfg }
}

// WithLogger sets the logger used for match decisions.
func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// New returns an empty dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		log:     logger.NopLogger{},
		drivers: make(map[string]*model.Driver),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// RequestDriver returns the driver that can reach the passenger fastest. When
// no driver is available the passenger is put at the front of the waiting
// list and nil is returned. Ties go to the driver registered first. The chosen
// driver stays registered.
func (d *Dispatcher) RequestDriver(p *model.Passenger) *model.Driver {
	var best *model.Driver
	bestTime := 0
	for _, drv := range d.order {
		if d.cfg.SkipBusyDrivers && !drv.IsIdle {
			continue
		}
		tt := drv.TravelTime(p.Origin)
		if best == nil || tt < bestTime {
			best, bestTime = drv, tt
		}
	}
	if best == nil {
		d.waiting = append([]*model.Passenger{p}, d.waiting...)
		d.log.Debugw("passenger queued", map[string]any{"passenger": p.ID, "waiting": len(d.waiting)})
		return nil
	}
	d.log.Debugw("driver matched", map[string]any{"passenger": p.ID, "driver": best.ID, "travel_time": bestTime})
	return best
}

// CancelRide removes every occurrence of p from the waiting list.
func (d *Dispatcher) CancelRide(p *model.Passenger) {
	kept := d.waiting[:0]
	for _, w := range d.waiting {
		if w != p {
			kept = append(kept, w)
		}
	}
	for i := len(kept); i < len(d.waiting); i++ {
		d.waiting[i] = nil
	}
	d.waiting = kept
}

// RequestPassenger registers drv if needed and hands it the most recently
// queued waiting passenger, or nil when nobody is waiting.
func (d *Dispatcher) RequestPassenger(drv *model.Driver) *model.Passenger {
	if _, ok := d.drivers[drv.ID]; !ok {
		d.drivers[drv.ID] = drv
		d.order = append(d.order, drv)
		d.log.Debugf("driver %s registered", drv.ID)
	}
	if len(d.waiting) == 0 {
		return nil
	}
	p := d.waiting[0]
	d.waiting[0] = nil
	d.waiting = d.waiting[1:]
	return p
}

// Drivers returns the registered drivers in registration order.
func (d *Dispatcher) Drivers() []*model.Driver {
	out := make([]*model.Driver, len(d.order))
	copy(out, d.order)
	return out
}

// Waiting returns a snapshot of the waiting list, most recent first.
func (d *Dispatcher) Waiting() []*model.Passenger {
	out := make([]*model.Passenger, len(d.waiting))
	copy(out, d.waiting)
	return out
}

// DriverCount returns the number of registered drivers.
func (d *Dispatcher) DriverCount() int { return len(d.order) }

// WaitingCount returns the length of the waiting list.
func (d *Dispatcher) WaitingCount() int { return len(d.waiting) }
