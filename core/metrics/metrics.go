package metrics

import (
	"github.com/kilianp07/ridesim/core/events"
	"github.com/kilianp07/ridesim/core/monitor"
)

// EventRecord describes one executed simulation event.
type EventRecord struct {
	RunID     string
	Kind      events.Kind
	Timestamp int
	// Scheduled is the number of follow-up events the execution produced.
	Scheduled int
	// QueueDepth is the number of pending events after the follow-ups were queued.
	QueueDepth int
}

// MetricsSink records simulation events for observability purposes.
type MetricsSink interface {
	RecordEvent(ev EventRecord) error
}

// ActivityRecorder receives monitor activities as they are logged.
type ActivityRecorder = monitor.ActivityRecorder

// RunSummary is the outcome of a completed run.
type RunSummary struct {
	RunID      string
	Report     monitor.Report
	Events     map[events.Kind]int
	Activities int
	Drivers    int
	// Waiting counts passengers left on the waiting list at the end of the run.
	Waiting int
	// EndTime is the timestamp of the last executed event.
	EndTime int
}

// ReportRecorder records the summary of a completed run.
type ReportRecorder interface {
	RecordReport(s RunSummary) error
}

// Flusher is implemented by sinks that buffer output until the run ends.
type Flusher interface {
	Flush() error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordEvent(EventRecord) error         { return nil }
func (NopSink) RecordActivity(monitor.Activity) error { return nil }
func (NopSink) RecordReport(RunSummary) error         { return nil }
