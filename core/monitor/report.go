package monitor

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/ridesim/core/model"
)

// Report holds the aggregate statistics of a run.
type Report struct {
	AveragePassengerWaitTime   float64 `json:"average_passenger_wait_time" yaml:"average_passenger_wait_time"`
	AverageDriverTotalDistance float64 `json:"average_driver_total_distance" yaml:"average_driver_total_distance"`
	AverageDriverTripDistance  float64 `json:"average_driver_trip_distance" yaml:"average_driver_trip_distance"`
}

// Report replays the log and computes the run statistics.
func (m *Monitor) Report() Report {
	return Report{
		AveragePassengerWaitTime:   m.averageWaitTime(),
		AverageDriverTotalDistance: m.averageTotalDistance(),
		AverageDriverTripDistance:  m.averageTripDistance(),
	}
}

// averageWaitTime measures, per passenger, the ticks between the request and
// the pickup or, failing that, the cancellation. Passengers still waiting at
// the end of the run are left out.
func (m *Monitor) averageWaitTime() float64 {
	var waits []float64
	for _, acts := range m.byActor(Passenger) {
		if w, ok := waitTime(acts); ok {
			waits = append(waits, float64(w))
		}
	}
	return mean(waits)
}

func waitTime(acts []Activity) (int, bool) {
	start := -1
	for i, a := range acts {
		if a.Action == Request {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	cancel := -1
	for _, a := range acts[start+1:] {
		if a.Action == Pickup {
			return a.Timestamp - acts[start].Timestamp, true
		}
		if a.Action == Cancel && cancel < 0 {
			cancel = a.Timestamp
		}
	}
	if cancel < 0 {
		return 0, false
	}
	return cancel - acts[start].Timestamp, true
}

func (m *Monitor) averageTotalDistance() float64 {
	var totals []float64
	for _, acts := range m.byActor(Driver) {
		totals = append(totals, float64(legs(acts, false)))
	}
	return mean(totals)
}

// averageTripDistance only counts legs that start at a pickup. Drivers who
// never carried anyone still count, with a distance of zero.
func (m *Monitor) averageTripDistance() float64 {
	var totals []float64
	for _, acts := range m.byActor(Driver) {
		totals = append(totals, float64(legs(acts, true)))
	}
	return mean(totals)
}

func legs(acts []Activity, tripsOnly bool) int {
	total := 0
	for i := 1; i < len(acts); i++ {
		if tripsOnly && acts[i-1].Action != Pickup {
			continue
		}
		total += model.ManhattanDistance(acts[i-1].Location, acts[i].Location)
	}
	return total
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}
