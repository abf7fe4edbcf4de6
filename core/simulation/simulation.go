package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kilianp07/ridesim/core/dispatch"
	"github.com/kilianp07/ridesim/core/events"
	"github.com/kilianp07/ridesim/core/logger"
	"github.com/kilianp07/ridesim/core/metrics"
	"github.com/kilianp07/ridesim/core/monitor"
	"github.com/kilianp07/ridesim/core/scheduler"
)

// Simulation owns the state of one run.
type Simulation struct {
	runID      string
	log        logger.Logger
	sink       metrics.MetricsSink
	dispatcher *dispatch.Dispatcher
	monitor    *monitor.Monitor

	steps  int
	clock  int
	counts map[events.Kind]int
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for run progress.
func WithLogger(l logger.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the sink receiving executed events and the final summary.
// Sinks that also record activities are attached to the monitor.
func WithMetrics(m metrics.MetricsSink) Option {
	return func(s *Simulation) {
		if m != nil {
			s.sink = m
		}
	}
}

// WithDispatcher replaces the default dispatcher.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(s *Simulation) {
		if d != nil {
			s.dispatcher = d
		}
	}
}

// WithMonitor replaces the default monitor.
func WithMonitor(m *monitor.Monitor) Option {
	return func(s *Simulation) {
		if m != nil {
			s.monitor = m
		}
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(s *Simulation) {
		if id != "" {
			s.runID = id
		}
	}
}

// New creates a Simulation with a fresh run identifier.
func New(opts ...Option) *Simulation {
	s := &Simulation{
		runID:  uuid.NewString(),
		log:    logger.NopLogger{},
		sink:   metrics.NopSink{},
		counts: make(map[events.Kind]int, len(events.Kinds)),
	}
	for _, o := range opts {
		o(s)
	}
	if s.dispatcher == nil {
		s.dispatcher = dispatch.New(dispatch.WithLogger(s.log))
	}
	if s.monitor == nil {
		s.monitor = monitor.New(monitor.WithLogger(s.log))
	}
	if rec, ok := s.sink.(metrics.ActivityRecorder); ok {
		if _, nop := s.sink.(metrics.NopSink); !nop {
			s.monitor.AddRecorder(rec)
		}
	}
	return s
}

// RunID identifies this run in metrics and activity logs.
func (s *Simulation) RunID() string { return s.runID }

// Monitor returns the activity monitor.
func (s *Simulation) Monitor() *monitor.Monitor { return s.monitor }

// Dispatcher returns the dispatcher.
func (s *Simulation) Dispatcher() *dispatch.Dispatcher { return s.dispatcher }

// Steps returns the number of events executed so far.
func (s *Simulation) Steps() int { return s.steps }

// Clock returns the timestamp of the last executed event.
func (s *Simulation) Clock() int { return s.clock }

// Counts returns the number of executed events per kind.
func (s *Simulation) Counts() map[events.Kind]int {
	out := make(map[events.Kind]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// Run executes the initial events and everything they schedule until the
// queue is empty, then returns the monitor's report. A cancelled context
// stops the run between two events; the partial report is returned along
// with the context error.
func (s *Simulation) Run(ctx context.Context, initial []events.Event) (monitor.Report, error) {
	q := scheduler.New(initial...)
	s.log.Infof("run %s started with %d initial events", s.runID, q.Len())

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			s.log.Warnf("run %s interrupted after %d events: %v", s.runID, s.steps, err)
			return s.monitor.Report(), err
		}
		ev, err := q.Pop()
		if err != nil {
			return s.monitor.Report(), fmt.Errorf("pop event: %w", err)
		}
		next := s.step(ev)
		for _, n := range next {
			q.Push(n)
		}
		s.recordEvent(ev, len(next), q.Len())
	}

	report := s.monitor.Report()
	s.log.Infof("run %s finished: %d events, clock %d, wait %.3f, total %.3f, trip %.3f",
		s.runID, s.steps, s.clock, report.AveragePassengerWaitTime,
		report.AverageDriverTotalDistance, report.AverageDriverTripDistance)
	s.recordReport(report)
	return report, nil
}

// step executes ev and checks that nothing is scheduled in the past.
func (s *Simulation) step(ev events.Event) []events.Event {
	s.log.Debugf("%s", ev)
	next := ev.Execute(s.dispatcher, s.monitor)
	for _, n := range next {
		if n.Timestamp() < ev.Timestamp() {
			panic(fmt.Sprintf("event %q scheduled %q before its own timestamp", ev, n))
		}
	}
	s.steps++
	s.clock = ev.Timestamp()
	s.counts[ev.Kind()]++
	return next
}

func (s *Simulation) recordEvent(ev events.Event, scheduled, depth int) {
	rec := metrics.EventRecord{
		RunID:      s.runID,
		Kind:       ev.Kind(),
		Timestamp:  ev.Timestamp(),
		Scheduled:  scheduled,
		QueueDepth: depth,
	}
	if err := s.sink.RecordEvent(rec); err != nil {
		s.log.Warnf("metrics sink: record event: %v", err)
	}
}

func (s *Simulation) recordReport(report monitor.Report) {
	if rec, ok := s.sink.(metrics.ReportRecorder); ok {
		sum := metrics.RunSummary{
			RunID:      s.runID,
			Report:     report,
			Events:     s.Counts(),
			Activities: s.monitor.Len(),
			Drivers:    s.dispatcher.DriverCount(),
			Waiting:    s.dispatcher.WaitingCount(),
			EndTime:    s.clock,
		}
		if err := rec.RecordReport(sum); err != nil {
			s.log.Warnf("metrics sink: record report: %v", err)
		}
	}
	if f, ok := s.sink.(metrics.Flusher); ok {
		if err := f.Flush(); err != nil {
			s.log.Warnf("metrics sink: flush: %v", err)
		}
	}
}
