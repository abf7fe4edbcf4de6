package monitor

import (
	"github.com/kilianp07/ridesim/core/logger"
	"github.com/kilianp07/ridesim/core/model"
)

// Monitor keeps an append-only log of everything drivers and passengers do
// during a run and derives the final statistics from it.
type Monitor struct {
	log        logger.Logger
	activities []Activity
	recorders  []ActivityRecorder
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithLogger sets the logger used to report recorder failures.
func WithLogger(l logger.Logger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.log = l
		}
	}
}

// WithRecorder forwards every logged activity to r.
func WithRecorder(r ActivityRecorder) Option {
	return func(m *Monitor) { m.AddRecorder(r) }
}

// New returns an empty Monitor.
func New(opts ...Option) *Monitor {
	m := &Monitor{log: logger.NopLogger{}}
	for _, o := range opts {
		o(m)
	}
	return m
}

// AddRecorder registers an additional activity recorder.
func (m *Monitor) AddRecorder(r ActivityRecorder) {
	if r != nil {
		m.recorders = append(m.recorders, r)
	}
}

// Notify appends an activity to the log. Recorder errors are logged and never
// interrupt the simulation.
func (m *Monitor) Notify(ts int, actor ActorKind, action ActionKind, id string, loc model.Location) {
	a := Activity{Timestamp: ts, Actor: actor, Action: action, ActorID: id, Location: loc}
	m.activities = append(m.activities, a)
	for _, r := range m.recorders {
		if err := r.RecordActivity(a); err != nil {
			m.log.Warnf("activity recorder: %v", err)
		}
	}
}

// Len returns the number of logged activities.
func (m *Monitor) Len() int { return len(m.activities) }

// Activities returns a copy of the log in insertion order.
func (m *Monitor) Activities() []Activity {
	out := make([]Activity, len(m.activities))
	copy(out, m.activities)
	return out
}

// ActivitiesOf returns the activities of a single actor in log order.
func (m *Monitor) ActivitiesOf(actor ActorKind, id string) []Activity {
	var out []Activity
	for _, a := range m.activities {
		if a.Actor == actor && a.ActorID == id {
			out = append(out, a)
		}
	}
	return out
}

// byActor groups the log per actor of the given kind, keeping the order in
// which actors first appear.
func (m *Monitor) byActor(kind ActorKind) [][]Activity {
	index := make(map[string]int)
	var groups [][]Activity
	for _, a := range m.activities {
		if a.Actor != kind {
			continue
		}
		i, ok := index[a.ActorID]
		if !ok {
			i = len(groups)
			index[a.ActorID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], a)
	}
	return groups
}
