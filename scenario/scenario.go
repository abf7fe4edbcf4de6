package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/ridesim/core/events"
)

// Scenario is the structured input layout.
type Scenario struct {
	Drivers    []DriverSpec    `json:"drivers" yaml:"drivers"`
	Passengers []PassengerSpec `json:"passengers" yaml:"passengers"`
}

// DriverSpec describes a driver entering the pool.
type DriverSpec struct {
	Timestamp int    `json:"timestamp" yaml:"timestamp"`
	ID        string `json:"id" yaml:"id"`
	Location  string `json:"location" yaml:"location"`
	Speed     int    `json:"speed" yaml:"speed"`
}

// PassengerSpec describes a passenger asking for a ride.
type PassengerSpec struct {
	Timestamp   int    `json:"timestamp" yaml:"timestamp"`
	ID          string `json:"id" yaml:"id"`
	Origin      string `json:"origin" yaml:"origin"`
	Destination string `json:"destination" yaml:"destination"`
	Patience    int    `json:"patience" yaml:"patience"`
}

// Events builds the initial events ordered by timestamp. Drivers come before
// passengers sharing their timestamp, and entries keep their list order
// otherwise.
func (s Scenario) Events() ([]events.Event, error) {
	out := make([]events.Event, 0, len(s.Drivers)+len(s.Passengers))
	for i, d := range s.Drivers {
		if err := checkEntry(d.Timestamp, d.ID); err != nil {
			return nil, fmt.Errorf("driver %d: %w", i, err)
		}
		ev, err := newDriverRequest(d.Timestamp, d.ID, d.Location, d.Speed)
		if err != nil {
			return nil, fmt.Errorf("driver %s: %w", d.ID, err)
		}
		out = append(out, ev)
	}
	for i, p := range s.Passengers {
		if err := checkEntry(p.Timestamp, p.ID); err != nil {
			return nil, fmt.Errorf("passenger %d: %w", i, err)
		}
		ev, err := newPassengerRequest(p.Timestamp, p.ID, p.Origin, p.Destination, p.Patience)
		if err != nil {
			return nil, fmt.Errorf("passenger %s: %w", p.ID, err)
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool { return events.Less(out[i], out[j]) })
	return out, nil
}

func checkEntry(ts int, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if ts < 0 {
		return fmt.Errorf("timestamp %d is negative", ts)
	}
	return nil
}

// Load reads the events stored at path. The extension selects the layout:
// .yaml/.yml and .json hold a Scenario, anything else is the text format.
func Load(path string) ([]events.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	var s Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(f)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		evs, err := ParseEvents(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return evs, nil
	}
	evs, err := s.Events()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return evs, nil
}
