package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/ridesim/core/monitor"
	"github.com/kilianp07/ridesim/scenario"
)

// Expected is the outcome a scenario must reproduce.
type Expected struct {
	Report *monitor.Report `yaml:"report,omitempty"`
	Steps  int             `yaml:"steps,omitempty"`
	// Events counts executed events by kind name, e.g. Dropoff: 2.
	Events map[string]int `yaml:"events,omitempty"`
	// Statuses maps passenger ids to waiting, cancelled or satisfied.
	Statuses map[string]string `yaml:"statuses,omitempty"`
	// Panics marks scenarios that drive a double-booked driver into an
	// invalid state.
	Panics bool `yaml:"panics,omitempty"`
}

type Scenario struct {
	Name            string            `yaml:"name"`
	Description     string            `yaml:"description,omitempty"`
	SkipBusyDrivers bool              `yaml:"skip_busy_drivers,omitempty"`
	Input           scenario.Scenario `yaml:",inline"`
	Expected        Expected          `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("%s: name is required", path)
	}
	return &sc, nil
}
