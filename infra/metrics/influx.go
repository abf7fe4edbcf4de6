package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/ridesim/core/events"
	coremetrics "github.com/kilianp07/ridesim/core/metrics"
	"github.com/kilianp07/ridesim/infra/logger"
)

// InfluxConfig holds the InfluxDB connection settings.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// InfluxSink writes one summary per run to an InfluxDB instance using the
// official client. Individual events are only tallied locally.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
	now      func() time.Time

	maxQueue int
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
		now:      time.Now,
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordEvent tracks the deepest queue seen during the run.
func (s *InfluxSink) RecordEvent(ev coremetrics.EventRecord) error {
	if ev.QueueDepth > s.maxQueue {
		s.maxQueue = ev.QueueDepth
	}
	return nil
}

// RecordReport writes the run statistics and the per-kind event counts.
func (s *InfluxSink) RecordReport(sum coremetrics.RunSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	now := s.now()
	points := []*write.Point{
		write.NewPointWithMeasurement("simulation_report").
			AddTag("run_id", sum.RunID).
			AddField("average_passenger_wait_time", sum.Report.AveragePassengerWaitTime).
			AddField("average_driver_total_distance", sum.Report.AverageDriverTotalDistance).
			AddField("average_driver_trip_distance", sum.Report.AverageDriverTripDistance).
			AddField("drivers", sum.Drivers).
			AddField("waiting", sum.Waiting).
			AddField("activities", sum.Activities).
			AddField("end_time", sum.EndTime).
			AddField("max_queue_depth", s.maxQueue).
			SetTime(now),
	}
	for _, k := range events.Kinds {
		points = append(points, write.NewPointWithMeasurement("simulation_events").
			AddTag("run_id", sum.RunID).
			AddTag("kind", k.String()).
			AddField("count", sum.Events[k]).
			SetTime(now))
	}
	return s.writeAPI.WritePoint(ctx, points...)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
