package scheduler

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/ridesim/core/events"
	"github.com/kilianp07/ridesim/core/model"
)

func cancellation(t *testing.T, id string, ts int) events.Event {
	t.Helper()
	p, err := model.NewPassenger(id, 0, model.Location{}, model.Location{})
	require.NoError(t, err)
	return events.NewCancellation(ts, p)
}

func drain(t *testing.T, q *Queue) []events.Event {
	t.Helper()
	var out []events.Event
	for !q.IsEmpty() {
		e, err := q.Pop()
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func TestQueueOrderingStableOnTies(t *testing.T) {
	a := cancellation(t, "a", 5)
	b := cancellation(t, "b", 1)
	c := cancellation(t, "c", 3)
	d := cancellation(t, "d", 1)
	q := New(a, b, c, d)
	require.Equal(t, 4, q.Len())

	got := drain(t, q)
	assert.Equal(t, []events.Event{b, d, c, a}, got)
}

func TestQueueFIFOUnderInterleaving(t *testing.T) {
	q := &Queue{}
	first := cancellation(t, "first", 2)
	q.Push(first)
	q.Push(cancellation(t, "early", 0))
	e, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0, e.Timestamp())

	second := cancellation(t, "second", 2)
	q.Push(second)
	third := cancellation(t, "third", 2)
	q.Push(third)
	assert.Equal(t, []events.Event{first, second, third}, drain(t, q))
}

func TestQueueRandomizedTies(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	q := &Queue{}
	type key struct{ ts, n int }
	order := map[events.Event]key{}
	for i := 0; i < 300; i++ {
		e := cancellation(t, "p", r.Intn(10))
		order[e] = key{e.Timestamp(), i}
		q.Push(e)
	}
	prev := key{-1, -1}
	for _, e := range drain(t, q) {
		k := order[e]
		if k.ts < prev.ts || (k.ts == prev.ts && k.n < prev.n) {
			t.Fatalf("out of order: %v after %v", k, prev)
		}
		prev = k
	}
}

func TestQueueEmpty(t *testing.T) {
	q := New()
	assert.True(t, q.IsEmpty())
	_, err := q.Pop()
	assert.True(t, errors.Is(err, ErrEmptyQueue))
	_, err = q.Peek()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestQueuePeek(t *testing.T) {
	q := New(cancellation(t, "late", 9), cancellation(t, "soon", 2))
	e, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, e.Timestamp())
	assert.Equal(t, 2, q.Len())
}
