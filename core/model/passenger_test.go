package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassengerStatusMonotonic(t *testing.T) {
	p, err := NewPassenger("p", 2, Location{1, 1}, Location{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Waiting, p.Status())

	p.SetStatus(Cancelled)
	assert.Equal(t, Cancelled, p.Status())
	assert.Panics(t, func() { p.SetStatus(Satisfied) })
	assert.Panics(t, func() { p.SetStatus(Waiting) })
	assert.Equal(t, Cancelled, p.Status())

	q, _ := NewPassenger("q", 2, Location{1, 1}, Location{2, 2})
	assert.Panics(t, func() { q.SetStatus(Waiting) })
	q.SetStatus(Satisfied)
	assert.Panics(t, func() { q.SetStatus(Cancelled) })
}

func TestNewPassengerRejectsNegativePatience(t *testing.T) {
	_, err := NewPassenger("p", -1, Location{}, Location{})
	assert.Error(t, err)
}

func TestPassengerEqual(t *testing.T) {
	a, _ := NewPassenger("bruh", 2, Location{1, 3}, Location{1, 2})
	b, _ := NewPassenger("bruh", 2, Location{1, 3}, Location{1, 2})
	assert.True(t, a.Equal(b))
	b.Origin = Location{5, 4}
	assert.False(t, a.Equal(b))
	b.Origin = Location{1, 3}
	b.Patience = 3
	assert.False(t, a.Equal(b))
	b.Patience = 2
	b.SetStatus(Satisfied)
	assert.False(t, a.Equal(b))
}

func TestPassengerStatusString(t *testing.T) {
	assert.Equal(t, "waiting", Waiting.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "satisfied", Satisfied.String())
	assert.Equal(t, "unknown", PassengerStatus(42).String())
}
