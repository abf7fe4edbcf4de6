package scenarios

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/ridesim/core/dispatch"
	"github.com/kilianp07/ridesim/core/events"
	"github.com/kilianp07/ridesim/core/model"
	"github.com/kilianp07/ridesim/core/monitor"
	"github.com/kilianp07/ridesim/core/simulation"
	"github.com/kilianp07/ridesim/infra/metrics"
)

func RunScenario(t *testing.T, sc *Scenario) {
	t.Helper()
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(metrics.PromConfig{}, reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	initial, err := sc.Input.Events()
	if err != nil {
		t.Fatalf("build events: %v", err)
	}
	passengers := make(map[string]*model.Passenger)
	for _, ev := range initial {
		if pr, ok := ev.(*events.PassengerRequest); ok {
			passengers[pr.Passenger.ID] = pr.Passenger
		}
	}

	sim := simulation.New(
		simulation.WithMetrics(sink),
		simulation.WithDispatcher(dispatch.New(dispatch.WithConfig(dispatch.Config{SkipBusyDrivers: sc.SkipBusyDrivers}))),
	)
	report, panicked := run(sim, initial)
	if panicked != sc.Expected.Panics {
		t.Fatalf("panicked = %v, want %v", panicked, sc.Expected.Panics)
	}
	if panicked {
		return
	}

	if want := sc.Expected.Report; want != nil && report != *want {
		t.Errorf("report = %+v, want %+v", report, *want)
	}
	if want := sc.Expected.Steps; want != 0 && sim.Steps() != want {
		t.Errorf("steps = %d, want %d", sim.Steps(), want)
	}
	for kind, want := range sc.Expected.Events {
		got := testutil.ToFloat64(sink.EventCounter(kind))
		if int(got) != want {
			t.Errorf("%s events = %v, want %d", kind, got, want)
		}
	}
	for id, want := range sc.Expected.Statuses {
		p, ok := passengers[id]
		if !ok {
			t.Errorf("unknown passenger %s", id)
			continue
		}
		if got := p.Status().String(); got != want {
			t.Errorf("passenger %s status = %s, want %s", id, got, want)
		}
	}
}

func run(sim *simulation.Simulation, initial []events.Event) (report monitor.Report, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()
	report, err := sim.Run(context.Background(), initial)
	if err != nil {
		panic(err)
	}
	return report, false
}
