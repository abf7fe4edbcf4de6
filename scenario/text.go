package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/ridesim/core/events"
	"github.com/kilianp07/ridesim/core/model"
)

const (
	driverRequest    = "DriverRequest"
	passengerRequest = "PassengerRequest"
)

// ParseEvents reads the text format from r and returns the events in file
// order. The first malformed line stops parsing with a *ParseError.
func ParseEvents(r io.Reader) ([]events.Event, error) {
	var out []events.Event
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: n, Text: line, Err: err}
		}
		out = append(out, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return out, nil
}

func parseLine(line string) (events.Event, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return nil, ErrFieldCount
	}
	ts, err := parseTimestamp(tokens[0])
	if err != nil {
		return nil, err
	}
	switch tokens[1] {
	case driverRequest:
		if len(tokens) != 5 {
			return nil, fmt.Errorf("%w: %s needs <id> <location> <speed>", ErrFieldCount, driverRequest)
		}
		speed, err := strconv.Atoi(tokens[4])
		if err != nil {
			return nil, fmt.Errorf("speed: %w", err)
		}
		return newDriverRequest(ts, tokens[2], tokens[3], speed)
	case passengerRequest:
		if len(tokens) != 6 {
			return nil, fmt.Errorf("%w: %s needs <id> <origin> <destination> <patience>", ErrFieldCount, passengerRequest)
		}
		patience, err := strconv.Atoi(tokens[5])
		if err != nil {
			return nil, fmt.Errorf("patience: %w", err)
		}
		return newPassengerRequest(ts, tokens[2], tokens[3], tokens[4], patience)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEvent, tokens[1])
	}
}

func parseTimestamp(s string) (int, error) {
	ts, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("timestamp: %w", err)
	}
	if ts < 0 {
		return 0, fmt.Errorf("timestamp %d is negative", ts)
	}
	return ts, nil
}

func newDriverRequest(ts int, id, loc string, speed int) (events.Event, error) {
	l, err := model.ParseLocation(loc)
	if err != nil {
		return nil, err
	}
	drv, err := model.NewDriver(id, l, speed)
	if err != nil {
		return nil, err
	}
	return events.NewDriverRequest(ts, drv), nil
}

func newPassengerRequest(ts int, id, origin, dest string, patience int) (events.Event, error) {
	o, err := model.ParseLocation(origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	d, err := model.ParseLocation(dest)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	p, err := model.NewPassenger(id, patience, o, d)
	if err != nil {
		return nil, err
	}
	return events.NewPassengerRequest(ts, p), nil
}
