package config

import (
	"fmt"

	"github.com/kilianp07/ridesim/pkg/export"
)

// ReportConfig defines how the final report is written.
type ReportConfig struct {
	// Format is one of text, json, yaml, csv or html, in any case. yml is
	// accepted for yaml.
	Format string `json:"format"`
	// Output is a file path; empty means stdout.
	Output string `json:"output"`
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
}

// Validate checks the report format.
func (c ReportConfig) Validate() error {
	_, err := export.ParseFormat(c.Format)
	return err
}

// ActivityLogConfig enables the activity log. Rotation applies to JSONL files.
type ActivityLogConfig struct {
	// Path of the JSONL file records are appended to. Empty disables the log.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	// Zero disables rotation.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// Validate checks the rotation limits.
func (c ActivityLogConfig) Validate() error {
	if c.MaxSizeMB < 0 || c.MaxBackups < 0 || c.MaxAgeDays < 0 {
		return fmt.Errorf("rotation limits must not be negative")
	}
	return nil
}

// Enabled reports whether activities should be written.
func (c ActivityLogConfig) Enabled() bool { return c.Path != "" }
