package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/ridesim/core/metrics"
	"github.com/kilianp07/ridesim/core/monitor"
)

// PromConfig configures the Prometheus sink.
type PromConfig struct {
	// Textfile, when set, receives the gathered metrics in text exposition
	// format on Flush, for pickup by a node exporter textfile collector.
	Textfile string `json:"textfile"`
}

// PromSink records simulation events in Prometheus metrics.
type PromSink struct {
	cfg        PromConfig
	gatherer   prometheus.Gatherer
	events     *prometheus.CounterVec
	activities *prometheus.CounterVec
	queue      prometheus.Gauge
	clock      prometheus.Gauge
	report     *prometheus.GaugeVec
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. The
// textfile option requires the registerer to also be a Gatherer.
func NewPromSinkWithRegistry(cfg PromConfig, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{cfg: cfg}
	if g, ok := reg.(prometheus.Gatherer); ok {
		s.gatherer = g
	}
	if cfg.Textfile != "" && s.gatherer == nil {
		return nil, fmt.Errorf("prometheus textfile %s: registerer cannot be gathered", cfg.Textfile)
	}

	var err error
	if s.events, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ridesim",
		Name:      "events_total",
		Help:      "Total number of executed simulation events",
	}, []string{"kind"})); err != nil {
		return nil, err
	}
	if s.activities, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ridesim",
		Name:      "activities_total",
		Help:      "Total number of logged actor activities",
	}, []string{"actor", "action"})); err != nil {
		return nil, err
	}
	if s.queue, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ridesim",
		Name:      "queue_depth",
		Help:      "Pending events after the last execution",
	})); err != nil {
		return nil, err
	}
	if s.clock, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ridesim",
		Name:      "clock",
		Help:      "Timestamp of the last executed event",
	})); err != nil {
		return nil, err
	}
	if s.report, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ridesim",
		Name:      "report",
		Help:      "Statistics of the last completed run",
	}, []string{"stat"})); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds c to reg, reusing the existing collector when an identical
// one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordEvent counts the event and tracks the queue depth and clock.
func (s *PromSink) RecordEvent(ev coremetrics.EventRecord) error {
	s.events.WithLabelValues(ev.Kind.String()).Inc()
	s.queue.Set(float64(ev.QueueDepth))
	s.clock.Set(float64(ev.Timestamp))
	return nil
}

// RecordActivity counts the activity by actor and action.
func (s *PromSink) RecordActivity(a monitor.Activity) error {
	s.activities.WithLabelValues(a.Actor.String(), a.Action.String()).Inc()
	return nil
}

// RecordReport publishes the run statistics.
func (s *PromSink) RecordReport(sum coremetrics.RunSummary) error {
	s.report.WithLabelValues("average_passenger_wait_time").Set(sum.Report.AveragePassengerWaitTime)
	s.report.WithLabelValues("average_driver_total_distance").Set(sum.Report.AverageDriverTotalDistance)
	s.report.WithLabelValues("average_driver_trip_distance").Set(sum.Report.AverageDriverTripDistance)
	s.report.WithLabelValues("waiting_at_end").Set(float64(sum.Waiting))
	s.clock.Set(float64(sum.EndTime))
	return nil
}

// Flush writes the textfile when one is configured.
func (s *PromSink) Flush() error {
	if s.cfg.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.cfg.Textfile, s.gatherer); err != nil {
		return fmt.Errorf("write prometheus textfile: %w", err)
	}
	return nil
}

// EventCounter returns the executed-event counter for a kind name.
func (s *PromSink) EventCounter(kind string) prometheus.Counter {
	return s.events.WithLabelValues(kind)
}
