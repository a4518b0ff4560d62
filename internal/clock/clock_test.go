package clock

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tickid/pkg/tick"
)

func TestClock_New(t *testing.T) {
	c := New()
	assert.Equal(t, tick.Zero, c.Now(), "new clock should start at tick 0")
}

func TestClock_NewAt(t *testing.T) {
	c := NewAt(tick.New(100))
	assert.Equal(t, tick.New(100), c.Now(), "clock should start at specified tick")
}

func TestClock_Step_Incrementing(t *testing.T) {
	c := New()

	assert.Equal(t, tick.New(1), c.Step())
	assert.Equal(t, tick.New(2), c.Step())
	assert.Equal(t, tick.New(3), c.Step())

	assert.Equal(t, tick.New(3), c.Now())
}

func TestClock_AdvanceAndRewind(t *testing.T) {
	c := NewAt(tick.New(1144))

	assert.Equal(t, tick.New(1160), c.Advance(16))
	assert.Equal(t, tick.New(1144), c.Rewind(16))
	assert.Equal(t, tick.New(1144), c.Advance(0))
}

func TestClock_Now_DoesNotIncrement(t *testing.T) {
	c := New()

	c.Step()
	c.Step()

	assert.Equal(t, tick.New(2), c.Now())
	assert.Equal(t, tick.New(2), c.Now())
}

func TestClock_AdvancePastMaxPanics(t *testing.T) {
	c := NewAt(tick.New(math.MaxUint32 - 1))

	defer func() {
		r := recover()
		require.NotNil(t, r, "advance past tick.Max should panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, tick.ErrOverflow))
		assert.Equal(t, tick.New(math.MaxUint32-1), c.Now(), "clock should keep its tick")
	}()
	c.Advance(2)
}

func TestClock_RewindBelowZeroPanics(t *testing.T) {
	c := NewAt(tick.New(3))

	assert.PanicsWithError(t, "tick underflow: tried to do 3 - 4", func() { c.Rewind(4) })
	assert.Equal(t, tick.New(3), c.Now())
}

func TestClock_Reset(t *testing.T) {
	c := New()
	c.Advance(10)

	c.Reset(tick.Zero)
	assert.Equal(t, tick.Zero, c.Now())
	assert.Equal(t, tick.New(1), c.Step())

	c.Reset(tick.Max)
	assert.Equal(t, tick.Max, c.Now())
}

func TestClock_ThreadSafe(t *testing.T) {
	c := New()
	const goroutines = 100
	const stepsPerGoroutine = 100

	var wg sync.WaitGroup
	ticks := make(chan tick.ID, goroutines*stepsPerGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < stepsPerGoroutine; j++ {
				ticks <- c.Step()
			}
		}()
	}

	wg.Wait()
	close(ticks)

	seen := make(map[tick.ID]bool)
	for id := range ticks {
		assert.False(t, seen[id], "%v produced twice", id)
		seen[id] = true
	}

	expected := goroutines * stepsPerGoroutine
	assert.Len(t, seen, expected)
	assert.Equal(t, tick.New(uint32(expected)), c.Now())
}

func TestClock_Deterministic(t *testing.T) {
	c1 := New()
	c2 := New()

	for i := 0; i < 100; i++ {
		assert.Equal(t, c1.Advance(uint32(i)), c2.Advance(uint32(i)))
	}
}
