package metrics

import (
	"errors"
	"testing"

	"github.com/kilianp07/ridesim/core/events"
	"github.com/kilianp07/ridesim/core/monitor"
)

type recordSink struct {
	count   int
	flushed bool
	err     error
}

func (r *recordSink) RecordEvent(EventRecord) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordReport(RunSummary) error {
	r.count++
	return nil
}

func (r *recordSink) Flush() error {
	r.flushed = true
	return r.err
}

// eventOnly implements nothing but the base interface.
type eventOnly struct{ count int }

func (e *eventOnly) RecordEvent(EventRecord) error {
	e.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	base := &eventOnly{}
	m := NewMultiSink(s1, s2, base)
	if err := m.RecordEvent(EventRecord{Kind: events.KindPickup}); err != nil {
		t.Fatalf("record event: %v", err)
	}
	if err := m.RecordReport(RunSummary{}); err != nil {
		t.Fatalf("record report: %v", err)
	}
	if err := m.RecordActivity(monitor.Activity{}); err != nil {
		t.Fatalf("record activity: %v", err)
	}
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("records not forwarded")
	}
	if base.count != 1 {
		t.Fatalf("base sink got %d records", base.count)
	}
	if err := m.Flush(); err != nil || !s1.flushed || !s2.flushed {
		t.Fatalf("flush not forwarded: %v", err)
	}
}

func TestMultiSinkErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := &recordSink{err: boom}
	after := &recordSink{}
	m := NewMultiSink(failing, after)
	if err := m.RecordEvent(EventRecord{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if after.count != 0 {
		t.Fatalf("sink after failure should not be called")
	}
	if err := m.Flush(); !errors.Is(err, boom) {
		t.Fatalf("expected joined flush error, got %v", err)
	}
	if !after.flushed {
		t.Fatalf("flush must reach every sink")
	}
}
