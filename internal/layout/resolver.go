package layout

import (
	"sync"
	"time"

	"heartdrop/internal/clock"
	"heartdrop/internal/domain"
)

// Resolver tracks the live device classification. Resize notifications are
// coalesced: a burst of viewport changes triggers one recompute after the
// quiet period, and observers only hear about actual profile changes.
type Resolver struct {
	clk      clock.Clock
	debounce time.Duration

	mu       sync.Mutex
	vp       domain.Viewport
	cfg      domain.LayoutConfig
	pending  clock.Timer
	onChange []func(domain.LayoutConfig)
}

func NewResolver(clk clock.Clock, debounce time.Duration, vp domain.Viewport) (*Resolver, error) {
	cfg, err := Resolve(vp)
	if err != nil {
		return nil, err
	}
	return &Resolver{clk: clk, debounce: debounce, vp: vp, cfg: cfg}, nil
}

func (r *Resolver) Current() domain.LayoutConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

func (r *Resolver) Viewport() domain.Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vp
}

// Observe registers a callback for profile changes. Callbacks run on the
// timer goroutine after the debounce window closes.
func (r *Resolver) Observe(fn func(domain.LayoutConfig)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = append(r.onChange, fn)
}

// ViewportChanged records a resize/orientation event and schedules the
// debounced reclassification. The latest viewport wins.
func (r *Resolver) ViewportChanged(vp domain.Viewport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vp = vp
	if r.pending != nil {
		r.pending.Stop()
	}
	r.pending = r.clk.AfterFunc(r.debounce, r.recompute)
}

// Stop cancels any pending reclassification.
func (r *Resolver) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
}

func (r *Resolver) recompute() {
	r.mu.Lock()
	r.pending = nil
	cfg, err := Resolve(r.vp)
	if err != nil {
		// Unknown classification cannot happen for in-range viewports;
		// keep the previous profile rather than publish a zero config.
		r.mu.Unlock()
		return
	}
	changed := cfg != r.cfg
	r.cfg = cfg
	observers := append([]func(domain.LayoutConfig){}, r.onChange...)
	r.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range observers {
		fn(cfg)
	}
}
