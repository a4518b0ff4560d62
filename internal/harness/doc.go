// Package harness runs tick scenarios: scripted sequences of tick operations
// with expected outcomes, executed against a deterministic clock.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	token: run-001          # optional run token, default "test-run-default"
//	start: 1144             # optional starting tick, decimal or "tick:XXXXXXXX"
//	steps:
//	  - op: advance
//	    delta: 16
//	    expect:
//	      result: "tick:00000488"
//	  - op: sub
//	    tick: 0
//	    delta: 1
//	    expect:
//	      fatal: underflow
//
// # Operations
//
//   - advance, rewind: move the clock by delta (in place)
//   - add, sub: tick +/- delta, leaving the clock alone
//   - diff: tick - other as a signed count
//   - compare: -1, 0 or 1
//   - show: the tick's display form
//
// A step's tick operand defaults to the clock's current tick.
//
// # Validation
//
// Every file is checked against an embedded CUE schema before it is decoded,
// so misspelled fields, unknown operations and out-of-range ticks are
// rejected with the offending path. Semantic checks (which operands an
// operation needs) run after decoding.
//
// # Deterministic Testing
//
// A run uses a fresh clock.Clock and a fixed run token, so the same scenario
// always produces the same trace.Snapshot. RunWithGolden compares that
// snapshot with testdata/golden/<name>.golden.
//
// Fatal tick faults raised by a step are recorded in the trace instead of
// ending the run; expect.fatal asserts on them.
package harness
