// Package tick provides ID, the identifier of one discrete step in a
// deterministic simulation.
//
// # Format
//
// An ID wraps an unsigned 32-bit tick count since an arbitrary epoch. Every
// value is valid, including 0 (the first tick) and math.MaxUint32. IDs order
// the same way their counts do, and two IDs are equal when their counts are.
//
// The canonical text form is "tick:" followed by exactly eight uppercase,
// zero-padded hexadecimal digits:
//
//	tick.New(42).String() // "tick:0000002A"
//
// # Arithmetic
//
// Add and Sub return new IDs; AddAssign and SubAssign update the receiver in
// place. Leaving the uint32 range is a caller bug, so all four panic with a
// *RangeError instead of wrapping around. Callers that need to handle the
// fault use CheckedAdd and CheckedSub, which return the same *RangeError as
// an error value.
//
// Diff returns the signed distance between two IDs as an int64, which holds
// every difference of two uint32 values exactly.
//
// Usage
//
//	now := tick.New(1144)
//	next := now.Add(1)       // tick:00000479
//	behind := next.Diff(now) // 1
//	now.AddAssign(16)
package tick
