package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/ridesim/core/monitor"
	"github.com/kilianp07/ridesim/core/monitor/logging"
)

const sampleEvents = `# one driver, one passenger
0 DriverRequest Amaranth 0,0 2
0 PassengerRequest Bergamot 0,0 4,0 10
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(args, &out, &errOut)
	return out.String(), err
}

func TestRunCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "events.txt", sampleEvents)

	out, err := execute(t, "run", path, "--format", "json", "--log-level", "disabled")
	require.NoError(t, err)
	var rep monitor.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, monitor.Report{AverageDriverTotalDistance: 4, AverageDriverTripDistance: 4}, rep)
}

func TestRunCommandText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "events.txt", sampleEvents)

	out, err := execute(t, "run", path, "--log-level", "disabled")
	require.NoError(t, err)
	assert.Equal(t, "average_passenger_wait_time: 0\n"+
		"average_driver_total_distance: 4\n"+
		"average_driver_trip_distance: 4\n", out)
}

func TestRunCommandOutputAndActivityLog(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "events.txt", sampleEvents)
	report := filepath.Join(dir, "report.csv")
	activity := filepath.Join(dir, "activity.jsonl")

	out, err := execute(t, "run", path, "-f", "csv", "-o", report, "--activity-log", activity, "--log-level", "disabled")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "metric,value\n"))

	store, err := logging.NewJSONLStore(activity)
	require.NoError(t, err)
	recs, err := store.Query(context.Background(), logging.ActivityQuery{})
	require.NoError(t, err)
	assert.Len(t, recs, 6)

	out, err = execute(t, "activity", activity, "--actor", "passenger")
	require.NoError(t, err)
	var lines []logging.ActivityRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var r logging.ActivityRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		lines = append(lines, r)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, monitor.Request, lines[0].Action)
	assert.Equal(t, monitor.Pickup, lines[1].Action)
	assert.Equal(t, recs[0].RunID, lines[0].RunID)

	out, err = execute(t, "activity", activity, "--id", "Amaranth", "--from", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRunCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "events.yaml", `drivers:
  - {timestamp: 0, id: Amaranth, location: "0,0", speed: 2}
passengers:
  - {timestamp: 0, id: Bergamot, origin: "0,0", destination: "4,0", patience: 10}
`)
	cfg := writeFile(t, dir, "ridesim.yaml", "logging:\n  level: disabled\nreport:\n  format: yaml\n")

	out, err := execute(t, "-c", cfg, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "average_driver_trip_distance: 4\n")
}

func TestRunCommandErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "events.txt", sampleEvents)
	bad := writeFile(t, dir, "bad.txt", "0 DriverRequest x 0,0 0\n")

	_, err := execute(t, "run", bad, "--log-level", "disabled")
	assert.Error(t, err)
	_, err = execute(t, "run", good, "--format", "xml", "--log-level", "disabled")
	assert.Error(t, err)
	_, err = execute(t, "run")
	assert.Error(t, err)
	_, err = execute(t, "activity", filepath.Join(dir, "missing.jsonl"))
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "events.txt", sampleEvents+"7 DriverRequest Crocus 1,1 1\n")

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "events: 3\ndrivers: 2\npassengers: 1\nlast request: 7\n", out)
}

func TestRunCommandDoubleBooking(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "events.txt", `0 DriverRequest D 0,0 1
0 PassengerRequest P1 0,2 0,3 100
1 PassengerRequest P2 0,1 0,0 4
`)

	out, err := execute(t, "run", path, "--log-level", "disabled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation aborted")
	assert.Contains(t, err.Error(), "driver D")
	assert.Empty(t, out)

	out, err = execute(t, "run", path, "--skip-busy-drivers", "--log-level", "disabled")
	require.NoError(t, err)
	assert.Contains(t, out, "average_passenger_wait_time: 3\n")
}

func TestRunCommandFormatAlias(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "events.txt", sampleEvents)

	out, err := execute(t, "run", path, "-f", "YML", "--log-level", "disabled")
	require.NoError(t, err)
	assert.Contains(t, out, "average_driver_total_distance: 4\n")
}
