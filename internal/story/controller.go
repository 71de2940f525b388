// Package story manages the expanded product card: the slide carousel, its
// auto-play timing and the pause/resume bookkeeping.
package story

import (
	"sync"
	"time"

	"heartdrop/internal/clock"
	"heartdrop/internal/domain"
)

type SlideKind int

const (
	SlideImage SlideKind = iota
	SlideDescription
)

// Slide is one unit of the expanded-card carousel: a gallery image, or the
// terminal description panel.
type Slide struct {
	Kind     SlideKind `json:"kind"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Text     string    `json:"text,omitempty"`
}

// Frame is a story state snapshot pushed to the client after every
// transition.
type Frame struct {
	ProductID  int64   `json:"productId"`
	Slide      int     `json:"slide"`
	SlideCount int     `json:"slideCount"`
	Playing    bool    `json:"playing"`
	Progress   float64 `json:"progress"`
	Collapsed  bool    `json:"collapsed"`
}

// ExpansionStore is the collection-level expansion slot: the single source of
// truth for which card is expanded.
type ExpansionStore interface {
	Expand(id int64) (prev int64, err error)
	Collapse(id int64)
	Expanded() int64
}

// playback is the per-expansion state. Replaced wholesale on every expand, so
// a stale timer callback can compare pointers to detect it has been
// superseded.
type playback struct {
	productID int64
	slides    []Slide
	idx       int
	playing   bool
	startedAt time.Time // adjusted backwards on resume so progress math holds
	frozen    float64   // progress fraction captured at pause
	timer     clock.Timer
}

type Controller struct {
	clk            clock.Clock
	imageDur       time.Duration
	descDur        time.Duration
	swipeThreshold float64
	coll           ExpansionStore

	mu      sync.Mutex
	pb      *playback
	onFrame func(Frame)
}

func NewController(clk clock.Clock, imageDur, descDur time.Duration, swipeThreshold float64, coll ExpansionStore) *Controller {
	return &Controller{
		clk:            clk,
		imageDur:       imageDur,
		descDur:        descDur,
		swipeThreshold: swipeThreshold,
		coll:           coll,
	}
}

func (c *Controller) OnFrame(fn func(Frame)) {
	c.mu.Lock()
	c.onFrame = fn
	c.mu.Unlock()
}

// Expand opens a product's story at slide 0, implicitly collapsing whatever
// was expanded. Touch sessions start paused; pointer sessions auto-play.
func (c *Controller) Expand(p domain.Product, touch bool) error {
	c.mu.Lock()
	if _, err := c.coll.Expand(p.ID); err != nil {
		c.mu.Unlock()
		return err
	}
	c.stopTimerLocked()

	slides := make([]Slide, 0, 4)
	for _, url := range p.Gallery() {
		slides = append(slides, Slide{Kind: SlideImage, ImageURL: url})
	}
	slides = append(slides, Slide{Kind: SlideDescription, Text: p.Description})

	c.pb = &playback{
		productID: p.ID,
		slides:    slides,
		playing:   !touch,
		startedAt: c.clk.Now(),
	}
	if c.pb.playing {
		c.scheduleLocked()
	}
	c.emitLocked()
	c.mu.Unlock()
	return nil
}

// Collapse exits the expansion, cancelling any pending auto-advance.
func (c *Controller) Collapse() {
	c.mu.Lock()
	c.collapseLocked()
	c.mu.Unlock()
}

// Next advances one slide; past the last slide it collapses instead of
// wrapping.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pb == nil {
		return
	}
	c.stepLocked(c.pb.idx + 1)
}

// Prev steps back one slide; before the first slide it collapses.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pb == nil {
		return
	}
	c.stepLocked(c.pb.idx - 1)
}

// ClickAt navigates by tap position: the left half of the card goes back,
// the right half forward. frac is the horizontal tap position 0..1.
func (c *Controller) ClickAt(frac float64) {
	if frac < 0.5 {
		c.Prev()
	} else {
		c.Next()
	}
}

// Swipe navigates when the horizontal delta dominates and exceeds the
// threshold; vertical-dominant swipes are ignored (scrolling).
func (c *Controller) Swipe(dx, dy float64) {
	abs := dx
	if abs < 0 {
		abs = -abs
	}
	vert := dy
	if vert < 0 {
		vert = -vert
	}
	if abs <= c.swipeThreshold || vert >= abs {
		return
	}
	if dx < 0 {
		c.Next()
	} else {
		c.Prev()
	}
}

// Pause freezes auto-play at the slide's exact elapsed fraction.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pb == nil || !c.pb.playing {
		return
	}
	c.pb.frozen = c.progressLocked()
	c.pb.playing = false
	c.stopTimerLocked()
	c.emitLocked()
}

// Resume continues auto-play from the frozen fraction: the next advance
// fires after (1-f) x slide duration, not a fresh full duration.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pb == nil || c.pb.playing {
		return
	}
	dur := c.slideDur(c.pb.idx)
	c.pb.playing = true
	c.pb.startedAt = c.clk.Now().Add(-time.Duration(c.pb.frozen * float64(dur)))
	c.scheduleLocked()
	c.emitLocked()
}

// Progress reports the current slide's elapsed fraction (0..1).
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progressLocked()
}

// Expanded returns the expanded product id, 0 if none.
func (c *Controller) ExpandedID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pb == nil {
		return 0
	}
	return c.pb.productID
}

func (c *Controller) Slides() []Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pb == nil {
		return nil
	}
	return append([]Slide(nil), c.pb.slides...)
}

func (c *Controller) slideDur(idx int) time.Duration {
	if c.pb != nil && idx >= 0 && idx < len(c.pb.slides) && c.pb.slides[idx].Kind == SlideDescription {
		return c.descDur
	}
	return c.imageDur
}

func (c *Controller) progressLocked() float64 {
	if c.pb == nil {
		return 0
	}
	if !c.pb.playing {
		return c.pb.frozen
	}
	f := float64(c.clk.Now().Sub(c.pb.startedAt)) / float64(c.slideDur(c.pb.idx))
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// stepLocked moves to a slide index from manual navigation: out of range in
// either direction collapses; otherwise the timer and progress restart for
// the new slide.
func (c *Controller) stepLocked(idx int) {
	if idx < 0 || idx >= len(c.pb.slides) {
		c.collapseLocked()
		return
	}
	c.stopTimerLocked()
	c.pb.idx = idx
	c.pb.frozen = 0
	c.pb.startedAt = c.clk.Now()
	if c.pb.playing {
		c.scheduleLocked()
	}
	c.emitLocked()
}

// scheduleLocked arms the auto-advance for the remaining portion of the
// current slide.
func (c *Controller) scheduleLocked() {
	pb := c.pb
	idx := pb.idx
	remaining := time.Duration((1 - c.progressLocked()) * float64(c.slideDur(idx)))
	pb.timer = c.clk.AfterFunc(remaining, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// Superseded by a newer expansion or a manual transition.
		if c.pb != pb || pb.idx != idx || !pb.playing {
			return
		}
		if idx+1 >= len(pb.slides) {
			c.collapseLocked()
			return
		}
		c.stepLocked(idx + 1)
	})
}

func (c *Controller) stopTimerLocked() {
	if c.pb != nil && c.pb.timer != nil {
		c.pb.timer.Stop()
		c.pb.timer = nil
	}
}

func (c *Controller) collapseLocked() {
	if c.pb == nil {
		return
	}
	c.stopTimerLocked()
	id := c.pb.productID
	c.pb = nil
	c.coll.Collapse(id)
	if c.onFrame != nil {
		c.onFrame(Frame{ProductID: id, Collapsed: true})
	}
}

func (c *Controller) emitLocked() {
	if c.onFrame == nil || c.pb == nil {
		return
	}
	c.onFrame(Frame{
		ProductID:  c.pb.productID,
		Slide:      c.pb.idx,
		SlideCount: len(c.pb.slides),
		Playing:    c.pb.playing,
		Progress:   c.progressLocked(),
	})
}
