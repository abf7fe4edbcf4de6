package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a position on the simulation grid.
type Location struct {
	Row    int `json:"row" yaml:"row"`
	Column int `json:"column" yaml:"column"`
}

// String returns the location formatted as "(row, column)".
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Column)
}

// ManhattanDistance returns the grid distance between a and b.
func ManhattanDistance(a, b Location) int {
	return abs(a.Row-b.Row) + abs(a.Column-b.Column)
}

// ParseLocation reads a location serialized as "row,col". Surrounding
// parentheses and whitespace around either coordinate are accepted.
func ParseLocation(s string) (Location, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("location %q: expected row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Location{}, fmt.Errorf("location %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Location{}, fmt.Errorf("location %q: column: %w", s, err)
	}
	return Location{Row: row, Column: col}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
