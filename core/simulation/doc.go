// Package simulation runs the discrete-event loop: it pops the earliest
// pending event, executes it against the dispatcher and monitor, and queues
// whatever the event schedules until nothing is left.
package simulation
