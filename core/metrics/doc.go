// Package metrics defines the sinks that observe a simulation run. A sink
// sees every executed event; optional interfaces let it also receive each
// monitor activity and the final report. Sinks are built from configuration
// through a registry and combined with NewMultiSink when several are listed.
package metrics
