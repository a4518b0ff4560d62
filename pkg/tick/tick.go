package tick

import (
	"fmt"
	"math"
)

// ID identifies a single tick. The zero value is tick 0.
//
// ID is a plain value: copy it freely and compare it with ==.
type ID struct {
	v uint32
}

var (
	// Zero is the first tick.
	Zero = ID{}
	// Max is the last representable tick.
	Max = ID{v: math.MaxUint32}
)

// New wraps value as an ID. Every uint32 is accepted.
func New(value uint32) ID { return ID{v: value} }

// Value returns the underlying tick count.
func (t ID) Value() uint32 { return t.v }

// Add returns t advanced by delta.
//
// Panics with a *RangeError if the result would exceed Max.
func (t ID) Add(delta uint32) ID {
	r, err := t.CheckedAdd(delta)
	if err != nil {
		panic(err)
	}
	return r
}

// Sub returns t moved back by delta.
//
// Panics with a *RangeError if delta is greater than t.Value().
func (t ID) Sub(delta uint32) ID {
	r, err := t.CheckedSub(delta)
	if err != nil {
		panic(err)
	}
	return r
}

// AddAssign advances t by delta in place. It panics like Add, and t is left
// unchanged when it does.
func (t *ID) AddAssign(delta uint32) { *t = t.Add(delta) }

// SubAssign moves t back by delta in place. It panics like Sub, and t is left
// unchanged when it does.
func (t *ID) SubAssign(delta uint32) { *t = t.Sub(delta) }

// CheckedAdd is Add with the overflow reported as an error.
func (t ID) CheckedAdd(delta uint32) (ID, error) {
	if delta > math.MaxUint32-t.v {
		return t, &RangeError{Op: OpAdd, Value: t.v, Delta: delta}
	}
	return ID{v: t.v + delta}, nil
}

// CheckedSub is Sub with the underflow reported as an error.
func (t ID) CheckedSub(delta uint32) (ID, error) {
	if delta > t.v {
		return t, &RangeError{Op: OpSub, Value: t.v, Delta: delta}
	}
	return ID{v: t.v - delta}, nil
}

// Next returns the tick after t. Panics at Max.
func (t ID) Next() ID { return t.Add(1) }

// Prev returns the tick before t. Panics at Zero.
func (t ID) Prev() ID { return t.Sub(1) }

// Diff returns t - other as a signed count of ticks. It never fails: the
// result always lies in [-math.MaxUint32, math.MaxUint32].
func (t ID) Diff(other ID) int64 {
	return int64(t.v) - int64(other.v)
}

// Compare returns -1, 0, 1 based on numeric order.
func (t ID) Compare(other ID) int {
	switch {
	case t.v < other.v:
		return -1
	case t.v > other.v:
		return 1
	}
	return 0
}

// Before reports whether t comes strictly before u.
func (t ID) Before(u ID) bool { return t.v < u.v }

// After reports whether t comes strictly after u.
func (t ID) After(u ID) bool { return t.v > u.v }

// Compare is the function form of ID.Compare, for slices.SortFunc and friends.
func Compare(a, b ID) int { return a.Compare(b) }

// String renders t as "tick:" plus eight uppercase hex digits.
func (t ID) String() string {
	const hexdigits = "0123456789ABCDEF"
	var out [len(prefix) + 8]byte
	copy(out[:], prefix)
	for i := 0; i < 8; i++ {
		out[len(out)-1-i] = hexdigits[(t.v>>(4*i))&0x0f]
	}
	return string(out[:])
}

// GoString implements fmt.GoStringer.
func (t ID) GoString() string {
	return fmt.Sprintf("tick.New(%d)", t.v)
}
