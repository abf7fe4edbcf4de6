package logging

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/ridesim/core/monitor"
)

func TestSQLiteStore_Query(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "activity.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	seed(t, store)

	all, err := store.Query(context.Background(), ActivityQuery{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "p1", all[1].ActorID)
	assert.Equal(t, monitor.Pickup, all[2].Action)

	out, err := store.Query(context.Background(), ActivityQuery{RunID: "a", ActorID: "d1", From: intp(1)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].Timestamp)

	out, err = store.Query(context.Background(), ActivityQuery{Actor: actor(monitor.Passenger), To: intp(0)})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.sqlite")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	seed(t, store)
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	out, err := store.Query(context.Background(), ActivityQuery{RunID: "b"})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestSQLiteStore_ActorColumn(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "activity.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	require.NoError(t, store.Append(context.Background(), ActivityRecord{
		RunID:    "a",
		Activity: monitor.Activity{Timestamp: 3, Actor: monitor.Passenger, Action: monitor.Cancel, ActorID: "p1"},
	}))

	var col string
	row := store.db.QueryRowContext(context.Background(), `SELECT actor FROM activities WHERE actor_id = ?`, "p1")
	require.NoError(t, row.Scan(&col))
	assert.Equal(t, "passenger", col)

	out, err := store.Query(context.Background(), ActivityQuery{Actor: actor(monitor.Passenger)})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
