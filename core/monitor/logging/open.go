package logging

import (
	"path/filepath"
	"strings"
)

// Options configures OpenStore.
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// OpenStore picks the backend from the path. A .db, .sqlite or .sqlite3
// extension selects SQLite. Otherwise a rotating JSONL store is returned when
// a size limit is set and a plain JSONL store when it is not.
func OpenStore(o Options) (ActivityStore, error) {
	switch strings.ToLower(filepath.Ext(o.Path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(o.Path)
	}
	if o.MaxSizeMB > 0 {
		return NewRotatingJSONLStore(o.Path, o.MaxSizeMB, o.MaxBackups, o.MaxAgeDays)
	}
	return NewJSONLStore(o.Path)
}
