package tick

import (
	"errors"
	"fmt"
)

// Op names the arithmetic that left the uint32 range.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
)

var (
	// ErrOverflow matches a *RangeError from addition.
	ErrOverflow = errors.New("tick overflow")
	// ErrUnderflow matches a *RangeError from subtraction.
	ErrUnderflow = errors.New("tick underflow")
)

// RangeError describes arithmetic whose result is not a valid tick.
//
// Add, Sub, AddAssign and SubAssign panic with a *RangeError; CheckedAdd and
// CheckedSub return one.
type RangeError struct {
	Op    Op
	Value uint32
	Delta uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: tried to do %d %s %d", e.kind(), e.Value, e.Op, e.Delta)
}

// Is makes errors.Is(err, ErrOverflow) and errors.Is(err, ErrUnderflow) work.
func (e *RangeError) Is(target error) bool {
	return target == e.kind()
}

func (e *RangeError) kind() error {
	if e.Op == OpSub {
		return ErrUnderflow
	}
	return ErrOverflow
}
