package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kilianp07/ridesim/config"
	"github.com/kilianp07/ridesim/core/dispatch"
	"github.com/kilianp07/ridesim/core/events"
	coremetrics "github.com/kilianp07/ridesim/core/metrics"
	"github.com/kilianp07/ridesim/core/monitor"
	"github.com/kilianp07/ridesim/core/monitor/logging"
	"github.com/kilianp07/ridesim/core/monitoring"
	"github.com/kilianp07/ridesim/core/simulation"
	"github.com/kilianp07/ridesim/infra/logger"
	// register the built-in metrics sinks
	_ "github.com/kilianp07/ridesim/infra/metrics"
	inframon "github.com/kilianp07/ridesim/infra/monitoring"
)

// Service wires the simulation core to the configured sinks and stores.
type Service struct {
	cfg   *config.Config
	log   logger.Logger
	sink  coremetrics.MetricsSink
	store logging.ActivityStore
	mon   monitoring.Monitor
}

// Result is the outcome of one simulation run.
type Result struct {
	RunID   string
	Report  monitor.Report
	Steps   int
	EndTime int
	Counts  map[events.Kind]int
	Waiting int
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	if err := logger.SetFormat(cfg.Logging.Format); err != nil {
		return nil, err
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	mon, err := inframon.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	svc := &Service{cfg: cfg, log: logger.New("service"), sink: sink, mon: mon}
	if cfg.ActivityLog.Enabled() {
		store, err := logging.OpenStore(logging.Options{
			Path:       cfg.ActivityLog.Path,
			MaxSizeMB:  cfg.ActivityLog.MaxSizeMB,
			MaxBackups: cfg.ActivityLog.MaxBackups,
			MaxAgeDays: cfg.ActivityLog.MaxAgeDays,
		})
		if err != nil {
			return nil, fmt.Errorf("activity log: %w", err)
		}
		svc.store = store
	}
	return svc, nil
}

// ErrAborted wraps a panic raised by the simulation core, such as a driver
// double booked while skip_busy_drivers is off.
var ErrAborted = errors.New("simulation aborted")

// Run simulates the initial events to completion. Errors and panics are
// reported to the configured monitor. A panic is returned as an error
// wrapping ErrAborted together with the partial result.
func (s *Service) Run(ctx context.Context, initial []events.Event) (res Result, err error) {
	d := dispatch.New(dispatch.WithConfig(s.cfg.Dispatch), dispatch.WithLogger(logger.New("dispatcher")))
	m := monitor.New(monitor.WithLogger(logger.New("monitor")))
	sim := simulation.New(
		simulation.WithLogger(logger.New("simulation")),
		simulation.WithMetrics(s.sink),
		simulation.WithDispatcher(d),
		simulation.WithMonitor(m),
	)
	if s.store != nil {
		m.AddRecorder(logging.NewRecorder(s.store, sim.RunID()))
	}
	result := func(report monitor.Report) Result {
		return Result{
			RunID:   sim.RunID(),
			Report:  report,
			Steps:   sim.Steps(),
			EndTime: sim.Clock(),
			Counts:  sim.Counts(),
			Waiting: d.WaitingCount(),
		}
	}
	defer func() {
		if r := recover(); r != nil {
			res = result(m.Report())
			err = fmt.Errorf("run %s: %w: %v", res.RunID, ErrAborted, r)
			s.log.Errorf("%v", err)
			s.mon.CaptureException(err, map[string]string{"run_id": res.RunID})
		}
	}()

	report, err := sim.Run(ctx, initial)
	res = result(report)
	if err != nil {
		s.mon.CaptureException(err, map[string]string{"run_id": res.RunID})
		return res, fmt.Errorf("run %s: %w", res.RunID, err)
	}
	return res, nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.mon.Flush(2 * time.Second)
	var errs []error
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	if m, ok := s.sink.(*coremetrics.MultiSink); ok {
		for _, sub := range m.Sinks {
			if c, ok := sub.(interface{ Close() }); ok {
				c.Close()
			}
		}
	}
	return errors.Join(errs...)
}
