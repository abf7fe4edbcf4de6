// Package scenario reads simulation input files and turns them into the
// initial events of a run.
//
// Two layouts are supported. The text format has one event per line:
//
//	# comment
//	0 DriverRequest Amaranth 1,1 1
//	1 PassengerRequest Bergamot 1,2 5,5 10
//
// The structured format is YAML or JSON with separate driver and passenger
// lists; see Scenario.
package scenario
