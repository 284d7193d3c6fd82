// Package sim is the Power Crisis simulation core.
//
// A Game owns every entity, the generator, two random timers and an event
// queue, and advances them once per Update call. It performs no I/O, holds
// no locks and never logs; the presentation layer reads state and drains
// events between frames.
package sim
