package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"heartdrop/internal/clock"
)

// Under the system clock a phase timer can fire after a re-flash stopped it
// (callback already past Stop, blocked on the mutex). The generation check
// must discard it.
func TestStalePhaseCallbackCannotRegressNewerNotice(t *testing.T) {
	clk := clock.NewMock()
	n := NewNotifier(clk, 600*time.Millisecond, time.Second, 300*time.Millisecond)

	n.Flash("first")
	stale := n.gen
	n.Flash("second")

	n.transition(stale, NoticeHidden)

	phase, msg := n.State()
	require.Equal(t, NoticeShaking, phase)
	require.Equal(t, "second", msg)
}

func TestStopClearsNoticeAndPendingTimers(t *testing.T) {
	clk := clock.NewMock()
	n := NewNotifier(clk, 600*time.Millisecond, time.Second, 300*time.Millisecond)

	var phases []NoticePhase
	n.OnChange(func(p NoticePhase, _ string) { phases = append(phases, p) })

	n.Flash("going away")
	n.Stop()

	phase, msg := n.State()
	require.Equal(t, NoticeHidden, phase)
	require.Empty(t, msg)

	// No phase timer survives Stop.
	clk.Advance(5 * time.Second)
	require.Equal(t, []NoticePhase{NoticeShaking}, phases)
}
