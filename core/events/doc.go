// Package events defines the closed set of simulation events and the state
// transition each one performs.
//
// Available event types:
//   - PassengerRequest: a passenger asks for a driver
//   - DriverRequest: a driver asks for a passenger
//   - Cancellation: a passenger's patience runs out
//   - Pickup: a driver reaches a passenger's origin
//   - Dropoff: a driver reaches a passenger's destination
//
// Executing an event mutates the shared drivers, passengers, dispatcher and
// monitor, and returns the events it schedules. Every scheduled event has a
// timestamp greater than or equal to the one that produced it.
package events
