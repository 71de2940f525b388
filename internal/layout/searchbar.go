package layout

import (
	"sync"
	"time"

	"heartdrop/internal/clock"
)

// SearchBar models the hover-revealed search bar: it shows immediately on
// pointer enter and hides a fixed delay after pointer leave. Re-entering
// during the delay cancels the pending hide.
type SearchBar struct {
	clk       clock.Clock
	hideDelay time.Duration

	mu       sync.Mutex
	visible  bool
	pending  clock.Timer
	onChange func(bool)
}

func NewSearchBar(clk clock.Clock, hideDelay time.Duration) *SearchBar {
	return &SearchBar{clk: clk, hideDelay: hideDelay}
}

// OnChange registers a visibility observer. The delayed hide fires it on the
// timer goroutine.
func (s *SearchBar) OnChange(fn func(visible bool)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *SearchBar) Enter() {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	changed := !s.visible
	s.visible = true
	fn := s.onChange
	s.mu.Unlock()
	if changed && fn != nil {
		fn(true)
	}
}

func (s *SearchBar) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
	}
	var t clock.Timer
	t = s.clk.AfterFunc(s.hideDelay, func() { s.hide(t) })
	s.pending = t
}

// hide is the delayed-hide callback. The timer identity check rejects a
// callback that already fired when a re-enter stopped it, so a superseded
// leave cannot hide the bar the user is hovering.
func (s *SearchBar) hide(t clock.Timer) {
	s.mu.Lock()
	if s.pending != t {
		s.mu.Unlock()
		return
	}
	s.visible = false
	s.pending = nil
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(false)
	}
}

// Stop cancels any pending hide, for connection teardown.
func (s *SearchBar) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *SearchBar) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}
