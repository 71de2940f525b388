package ws

import (
	"testing"
	"time"

	"heartdrop/internal/clock"
	"heartdrop/internal/config"
	"heartdrop/internal/gesture"
	"heartdrop/internal/store"
)

func engineConfig() config.EngineConfig {
	return config.EngineConfig{
		DragThresholdPx:    5,
		ClickBudgetMs:      1000,
		ResizeDebounceMs:   150,
		SwipeThresholdPx:   50,
		ImageSlideMs:       3000,
		DescriptionSlideMs: 5000,
		ShakeMs:            600,
		NoticeHoldMs:       1000,
		NoticeFadeMs:       300,
		SearchBarHideMs:    1000,
	}
}

// A notification's phase timers outlive the connection when the user closes
// the tab mid-notice. Once the hub has closed Send, the late engine events
// must be swallowed, not panic the process.
func TestEngineEventAfterDisconnectDoesNotPanic(t *testing.T) {
	clk := clock.NewMock()
	mgr := store.NewManager(store.DemoCatalog(), nil)
	c := NewClient(nil, nil, "s1", mgr.Session("s1"), engineConfig(), clk)

	c.notifier.Flash("You are already coveting this item")
	c.closeSend()

	// Shake, hold and fade timers all fire against the closed channel.
	clk.Advance(2 * time.Second)

	if phase, _ := c.notifier.State(); phase != gesture.NoticeHidden {
		t.Fatalf("notice phase = %v, want hidden", phase)
	}
}

func TestShutdownStopsEngineTimers(t *testing.T) {
	clk := clock.NewMock()
	mgr := store.NewManager(store.DemoCatalog(), nil)
	c := NewClient(nil, nil, "s1", mgr.Session("s1"), engineConfig(), clk)

	c.notifier.Flash("You are already coveting this item")
	c.shaker.Trigger(3)
	c.bar.Enter()
	c.bar.Leave()

	c.shutdown()

	if c.shaker.IsShaking(3) {
		t.Fatal("shake survived shutdown")
	}
	if phase, _ := c.notifier.State(); phase != gesture.NoticeHidden {
		t.Fatalf("notice phase = %v, want hidden", phase)
	}

	// No timer is left to fire events after teardown.
	queued := len(c.Send)
	clk.Advance(10 * time.Second)
	if len(c.Send) != queued {
		t.Fatalf("events fired after shutdown: %d -> %d", queued, len(c.Send))
	}
	if !c.bar.Visible() {
		t.Fatal("pending hide fired after shutdown")
	}
}
