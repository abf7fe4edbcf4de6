package logging

import (
	"context"

	"github.com/kilianp07/ridesim/core/monitor"
)

// ActivityRecord is one monitor activity tagged with the run it belongs to.
type ActivityRecord struct {
	RunID string `json:"run_id"`
	monitor.Activity
}

// ActivityQuery defines filters for retrieving records. Zero values match
// everything.
type ActivityQuery struct {
	RunID   string
	Actor   *monitor.ActorKind
	ActorID string
	// From and To bound the simulation timestamp, both inclusive.
	From *int
	To   *int
}

// Match reports whether r passes every filter of q.
func (q ActivityQuery) Match(r ActivityRecord) bool {
	if q.RunID != "" && r.RunID != q.RunID {
		return false
	}
	if q.Actor != nil && r.Actor != *q.Actor {
		return false
	}
	if q.ActorID != "" && r.ActorID != q.ActorID {
		return false
	}
	if q.From != nil && r.Timestamp < *q.From {
		return false
	}
	if q.To != nil && r.Timestamp > *q.To {
		return false
	}
	return true
}

// ActivityStore persists ActivityRecords and supports querying.
type ActivityStore interface {
	Append(ctx context.Context, rec ActivityRecord) error
	Query(ctx context.Context, q ActivityQuery) ([]ActivityRecord, error)
	Close() error
}

// Recorder adapts an ActivityStore to monitor.ActivityRecorder for one run.
type Recorder struct {
	store ActivityStore
	runID string
}

// NewRecorder returns a recorder appending to store under runID.
func NewRecorder(store ActivityStore, runID string) *Recorder {
	return &Recorder{store: store, runID: runID}
}

// RecordActivity appends a to the store.
func (r *Recorder) RecordActivity(a monitor.Activity) error {
	return r.store.Append(context.Background(), ActivityRecord{RunID: r.runID, Activity: a})
}
