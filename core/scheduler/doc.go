// Package scheduler holds pending simulation events in timestamp order.
// Events sharing a timestamp leave the queue in the order they entered it.
package scheduler
