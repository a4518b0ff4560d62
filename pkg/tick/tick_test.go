package tick

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Value(t *testing.T) {
	assert.Equal(t, uint32(12414), New(12414).Value())
	assert.Equal(t, uint32(0), New(0).Value())
	assert.Equal(t, uint32(math.MaxUint32), New(math.MaxUint32).Value())
}

func TestZeroValueIsFirstTick(t *testing.T) {
	var id ID
	assert.Equal(t, Zero, id)
	assert.Equal(t, New(0), id)
	assert.Equal(t, "tick:00000000", id.String())
}

func TestString(t *testing.T) {
	tests := []struct {
		value    uint32
		expected string
	}{
		{0, "tick:00000000"},
		{42, "tick:0000002A"},
		{141, "tick:0000008D"},
		{0xDEADBEEF, "tick:DEADBEEF"},
		{math.MaxUint32, "tick:FFFFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.value).String())
			assert.Equal(t, tt.expected, fmt.Sprint(New(tt.value)))
		})
	}
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "tick.New(42)", fmt.Sprintf("%#v", New(42)))
}

func TestAdd(t *testing.T) {
	result := New(42).Add(99)
	assert.Equal(t, New(141), result)
	assert.Equal(t, "tick:0000008D", result.String())
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	first := New(42)
	_ = first.Add(1)
	assert.Equal(t, uint32(42), first.Value())
}

func TestAdd_ReachesMax(t *testing.T) {
	assert.Equal(t, Max, New(math.MaxUint32-1).Add(1))
	assert.Equal(t, Max, Zero.Add(math.MaxUint32))
}

func TestAdd_Overflow(t *testing.T) {
	assert.PanicsWithError(t, "tick overflow: tried to do 4294967295 + 1", func() {
		_ = Max.Add(1)
	})
	assert.Panics(t, func() { _ = New(2).Add(math.MaxUint32 - 1) })
}

func TestSub(t *testing.T) {
	assert.Equal(t, New(11270), New(12414).Sub(1144))
	assert.Equal(t, Zero, New(7).Sub(7))
}

func TestSub_Underflow(t *testing.T) {
	assert.PanicsWithError(t, "tick underflow: tried to do 0 - 1", func() {
		_ = Zero.Sub(1)
	})
	assert.Panics(t, func() { _ = New(1144).Sub(12414) })
}

func TestAddAssign(t *testing.T) {
	first := New(1144)
	first.AddAssign(1)
	assert.Equal(t, uint32(1145), first.Value())
}

func TestSubAssign(t *testing.T) {
	first := New(1144)
	first.SubAssign(1)
	assert.Equal(t, uint32(1143), first.Value())
}

func TestAssign_PanicLeavesReceiverUnchanged(t *testing.T) {
	high := Max
	assert.Panics(t, func() { high.AddAssign(1) })
	assert.Equal(t, Max, high)

	low := New(3)
	assert.Panics(t, func() { low.SubAssign(4) })
	assert.Equal(t, New(3), low)
}

func TestPanicValueIsRangeError(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, OpAdd, re.Op)
		assert.Equal(t, uint32(math.MaxUint32), re.Value)
		assert.Equal(t, uint32(5), re.Delta)
	}()
	_ = Max.Add(5)
}

func TestCheckedAdd(t *testing.T) {
	got, err := New(10).CheckedAdd(5)
	require.NoError(t, err)
	assert.Equal(t, New(15), got)

	got, err = Max.CheckedAdd(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.False(t, errors.Is(err, ErrUnderflow))
	assert.Equal(t, Max, got, "receiver is returned on failure")
}

func TestCheckedSub(t *testing.T) {
	got, err := New(10).CheckedSub(10)
	require.NoError(t, err)
	assert.Equal(t, Zero, got)

	_, err = New(10).CheckedSub(11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnderflow))
	assert.EqualError(t, err, "tick underflow: tried to do 10 - 11")

	wrapped := fmt.Errorf("rewind: %w", err)
	assert.True(t, errors.Is(wrapped, ErrUnderflow))
}

func TestNextPrev(t *testing.T) {
	assert.Equal(t, New(1), Zero.Next())
	assert.Equal(t, New(41), New(42).Prev())
	assert.Panics(t, func() { _ = Max.Next() })
	assert.Panics(t, func() { _ = Zero.Prev() })
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     uint32
		expected int64
	}{
		{"positive", 12414, 1144, 11270},
		{"negative", 1144, 12414, -11270},
		{"equal", 77, 77, 0},
		{"zero minus max", 0, math.MaxUint32, -4294967295},
		{"max minus zero", math.MaxUint32, 0, 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.a).Diff(New(tt.b)))
		})
	}
}

func TestOrdering(t *testing.T) {
	first := New(12414)
	second := New(1144)

	assert.True(t, first.After(second))
	assert.False(t, first.Before(second))
	assert.True(t, second.Before(first))
	assert.Equal(t, 1, first.Compare(second))
	assert.Equal(t, -1, second.Compare(first))

	same := New(1144)
	assert.Equal(t, 0, second.Compare(same), "1144 <= 1144")
	assert.False(t, second.Before(same))
	assert.False(t, second.After(same))
	assert.True(t, second == same)
}

func TestCompare_SortFunc(t *testing.T) {
	ids := []ID{New(9), Max, Zero, New(3), New(3)}
	slices.SortFunc(ids, Compare)
	assert.Equal(t, []ID{Zero, New(3), New(3), New(9), Max}, ids)
}

func TestUsableAsMapKey(t *testing.T) {
	seen := map[ID]string{New(1): "one"}
	assert.Equal(t, "one", seen[New(0).Next()])
}
