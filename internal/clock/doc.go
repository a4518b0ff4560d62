// Package clock implements the deterministic simulation clock.
//
// A Clock holds the current tick.ID of a simulation loop. The loop moves it
// forward with Step or Advance, and replay/rollback code moves it back with
// Rewind. The clock never reads wall-clock time: the same sequence of calls
// always yields the same ticks.
//
// Leaving the tick range is fatal, exactly as it is for tick.ID arithmetic.
package clock
