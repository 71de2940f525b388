package gesture

import (
	"sync"
	"time"

	"heartdrop/internal/clock"
)

// ShakeTracker tracks which product cards are currently playing the attention
// shake. Each trigger auto-resets after the shake duration; re-triggering a
// shaking card cancels its pending reset and restarts the window.
type ShakeTracker struct {
	clk clock.Clock
	dur time.Duration

	mu       sync.Mutex
	shaking  map[int64]clock.Timer
	onChange func(productID int64, shaking bool)
}

func NewShakeTracker(clk clock.Clock, dur time.Duration) *ShakeTracker {
	return &ShakeTracker{clk: clk, dur: dur, shaking: make(map[int64]clock.Timer)}
}

// OnChange registers an observer fired when a card starts or stops shaking.
func (s *ShakeTracker) OnChange(fn func(productID int64, shaking bool)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *ShakeTracker) Trigger(productID int64) {
	s.mu.Lock()
	if t, ok := s.shaking[productID]; ok {
		t.Stop()
	}
	var t clock.Timer
	t = s.clk.AfterFunc(s.dur, func() { s.expire(productID, t) })
	s.shaking[productID] = t
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(productID, true)
	}
}

// expire is the auto-reset callback. The timer identity check rejects a
// callback that already fired when a re-trigger stopped it, so the old reset
// cannot delete the shake the re-trigger just installed.
func (s *ShakeTracker) expire(productID int64, t clock.Timer) {
	s.mu.Lock()
	if s.shaking[productID] != t {
		s.mu.Unlock()
		return
	}
	delete(s.shaking, productID)
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(productID, false)
	}
}

func (s *ShakeTracker) IsShaking(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.shaking[productID]
	return ok
}

func (s *ShakeTracker) Reset(productID int64) {
	s.mu.Lock()
	t, ok := s.shaking[productID]
	if ok {
		t.Stop()
		delete(s.shaking, productID)
	}
	fn := s.onChange
	s.mu.Unlock()
	if ok && fn != nil {
		fn(productID, false)
	}
}

func (s *ShakeTracker) ResetAll() {
	s.mu.Lock()
	ids := make([]int64, 0, len(s.shaking))
	for id, t := range s.shaking {
		t.Stop()
		delete(s.shaking, id)
		ids = append(ids, id)
	}
	fn := s.onChange
	s.mu.Unlock()
	if fn == nil {
		return
	}
	for _, id := range ids {
		fn(id, false)
	}
}
