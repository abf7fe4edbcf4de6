package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/ridesim/core/monitor"
)

var report = monitor.Report{
	AveragePassengerWaitTime:   1.5,
	AverageDriverTotalDistance: 4,
	AverageDriverTripDistance:  4.0 / 3.0,
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "text", monitor.Report{AveragePassengerWaitTime: 2, AverageDriverTotalDistance: 8, AverageDriverTripDistance: 1.5}))
	assert.Equal(t, "average_passenger_wait_time: 2\n"+
		"average_driver_total_distance: 8\n"+
		"average_driver_trip_distance: 1.5\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", report))
	var got monitor.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, report, got)
	assert.Contains(t, buf.String(), `"average_driver_total_distance": 4`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "YAML", report))
	assert.Contains(t, buf.String(), "average_passenger_wait_time: 1.5\n")
	var got monitor.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, report, got)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", monitor.Report{AverageDriverTotalDistance: 4, AverageDriverTripDistance: 4}))
	assert.Equal(t, "metric,value\n"+
		"average_passenger_wait_time,0\n"+
		"average_driver_total_distance,4\n"+
		"average_driver_trip_distance,4\n", buf.String())
}

func TestWriteDefaultsToText(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, "", report))
	require.NoError(t, WriteText(&b, report))
	assert.Equal(t, b.String(), a.String())
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "html", report))
	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Simulation report")
	assert.Contains(t, out, "average_driver_total_distance")
}

func TestParseFormat(t *testing.T) {
	cases := map[string]string{
		"":      "text",
		"text":  "text",
		"JSON":  "json",
		"yml":   "yaml",
		"Yaml":  "yaml",
		" csv ": "csv",
		"HTML":  "html",
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "xml", report)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Zero(t, buf.Len())
}
