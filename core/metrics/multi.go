package metrics

import (
	"errors"

	"github.com/kilianp07/ridesim/core/monitor"
)

// MultiSink fans out records to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordEvent forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordEvent(ev EventRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordActivity forwards activities to sinks that accept them.
func (m *MultiSink) RecordActivity(a monitor.Activity) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ActivityRecorder); ok {
			if err := rec.RecordActivity(a); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordReport forwards the run summary to sinks that accept it.
func (m *MultiSink) RecordReport(sum RunSummary) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ReportRecorder); ok {
			if err := rec.RecordReport(sum); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes every sink that buffers output and joins their errors.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			if err := f.Flush(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
