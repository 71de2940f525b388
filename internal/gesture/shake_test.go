package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"heartdrop/internal/clock"
)

// An auto-reset that fired just as a re-trigger stopped it must not delete
// the shake the re-trigger installed.
func TestStaleResetCannotClearRetriggeredShake(t *testing.T) {
	clk := clock.NewMock()
	s := NewShakeTracker(clk, 600*time.Millisecond)

	s.Trigger(7)
	s.mu.Lock()
	stale := s.shaking[7]
	s.mu.Unlock()
	s.Trigger(7)

	s.expire(7, stale)
	require.True(t, s.IsShaking(7))

	// The live timer still resets on schedule.
	clk.Advance(600 * time.Millisecond)
	require.False(t, s.IsShaking(7))
}

func TestResetAllStopsEveryShake(t *testing.T) {
	clk := clock.NewMock()
	s := NewShakeTracker(clk, 600*time.Millisecond)

	var stopped []int64
	s.OnChange(func(id int64, shaking bool) {
		if !shaking {
			stopped = append(stopped, id)
		}
	})

	s.Trigger(1)
	s.Trigger(2)
	s.ResetAll()

	require.False(t, s.IsShaking(1))
	require.False(t, s.IsShaking(2))
	require.ElementsMatch(t, []int64{1, 2}, stopped)

	// Nothing left pending.
	clk.Advance(time.Second)
	require.Len(t, stopped, 2)
}
