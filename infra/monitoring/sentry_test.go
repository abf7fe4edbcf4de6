package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/ridesim/config"
	coremon "github.com/kilianp07/ridesim/core/monitoring"
)

func TestNewSentryMonitor_EmptyDSN(t *testing.T) {
	m, err := NewSentryMonitor(config.SentryConfig{})
	require.NoError(t, err)
	assert.IsType(t, coremon.NopMonitor{}, m)
}

func TestNewSentryMonitor_BadDSN(t *testing.T) {
	_, err := NewSentryMonitor(config.SentryConfig{DSN: "not a dsn"})
	assert.Error(t, err)
}

func TestSentryMonitor_CaptureAndRecover(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/1/") {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dsn := strings.Replace(srv.URL, "http://", "http://public@", 1) + "/1"
	m, err := NewSentryMonitor(config.SentryConfig{DSN: dsn, Environment: "test"})
	require.NoError(t, err)

	m.CaptureException(errors.New("boom"), map[string]string{"run_id": "r1"})
	m.CaptureException(nil, nil)
	m.Flush(2 * time.Second)
	assert.Equal(t, int32(1), hits.Load())

	assert.PanicsWithValue(t, "double booked", func() {
		defer m.Recover()
		panic("double booked")
	})
	assert.Equal(t, int32(2), hits.Load())
}
