package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/ridesim/core/monitor"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "yaml", "csv", "html"}

// ParseFormat normalizes a format name. Matching is case-insensitive, "yml"
// is an alias of "yaml" and an empty name means "text".
func ParseFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "":
		return "text", nil
	case "yml":
		return "yaml", nil
	}
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return f, nil
}

// Write renders the report to w in the requested format.
func Write(w io.Writer, format string, r monitor.Report) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case "json":
		return WriteJSON(w, r)
	case "yaml":
		return WriteYAML(w, r)
	case "csv":
		return WriteCSV(w, r)
	case "html":
		return WriteHTML(w, r)
	default:
		return WriteText(w, r)
	}
}

// WriteText writes one "name: value" line per statistic.
func WriteText(w io.Writer, r monitor.Report) error {
	for _, row := range rows(r) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report to w in JSON format.
func WriteJSON(w io.Writer, r monitor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report to w in YAML format.
func WriteYAML(w io.Writer, r monitor.Report) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteCSV writes the report to w in CSV format with a metric,value header.
func WriteCSV(w io.Writer, r monitor.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	for _, row := range rows(r) {
		if err := cw.Write(row[:]); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHTML renders the report as a standalone HTML page holding a bar chart.
func WriteHTML(w io.Writer, r monitor.Report) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Simulation report"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Time units"}),
	)

	var names []string
	var values []opts.BarData
	for _, st := range stats(r) {
		names = append(names, st.name)
		values = append(values, opts.BarData{Value: st.value})
	}
	bar.SetXAxis(names).AddSeries("report", values)

	// Render to a buffer so a failed render leaves w untouched.
	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

type stat struct {
	name  string
	value float64
}

func stats(r monitor.Report) []stat {
	return []stat{
		{"average_passenger_wait_time", r.AveragePassengerWaitTime},
		{"average_driver_total_distance", r.AverageDriverTotalDistance},
		{"average_driver_trip_distance", r.AverageDriverTripDistance},
	}
}

func rows(r monitor.Report) [][2]string {
	var out [][2]string
	for _, st := range stats(r) {
		out = append(out, [2]string{st.name, formatFloat(st.value)})
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
