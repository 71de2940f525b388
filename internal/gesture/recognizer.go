// Package gesture turns raw press-move-release input into click, drop or
// no-op outcomes for the draggable heart widget.
package gesture

import (
	"math"
	"sync"
	"time"

	"heartdrop/internal/clock"
)

// Mode is the heart widget's global toggle mode.
type Mode int

const (
	ModeLike Mode = iota
	ModeUnlike
)

func (m Mode) String() string {
	if m == ModeUnlike {
		return "unlike"
	}
	return "like"
}

// Source tags which input pathway produced an event. A gesture is owned by
// the pathway that pressed; events from the other pathway are ignored until
// release so the two listeners can never interleave inside one gesture.
type Source string

const (
	SourceMouse   Source = "mouse"
	SourcePointer Source = "pointer"
)

// Outcome classifies a finished gesture.
type Outcome int

const (
	OutcomeNone       Outcome = iota // released off-target, or slow press without movement
	OutcomeModeToggle                // click: global mode flipped
	OutcomeDrop                      // legal drop: one like-toggle issued
	OutcomeBlocked                   // illegal drop: notification raised, no toggle
)

// State of the per-gesture machine.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDragging
)

// LikeStore is the slice of the collection the recognizer needs: current
// like state for legality checks, and the toggle command for drops. The
// recognizer never mutates like state directly.
type LikeStore interface {
	IsLiked(id int64) (liked, ok bool)
	ToggleLike(id int64) error
}

// Hover is the drag-feedback state pushed to the client: which card is under
// the heart, in which mode, and whether dropping there is allowed.
type Hover struct {
	ProductID int64 `json:"productId"` // 0 = nothing hovered
	Mode      Mode  `json:"-"`
	LikeMode  bool  `json:"likeMode"`
	CanDrop   bool  `json:"canDrop"`
}

const (
	msgAlreadyLiked = "You are already coveting this item"
	msgNotLiked     = "You are not coveting this item yet"
)

// session is the arena-scoped state of one gesture: created on press,
// mutated on move, consumed on release. Never reused.
type session struct {
	source           Source
	start            time.Time
	startX, startY   float64
	originX, originY float64 // widget rest center, the drag visual's anchor
	offsetX, offsetY float64
	dragged          bool
	hover            int64
	canDrop          bool
}

// Recognizer owns the global like/unlike mode and at most one live gesture
// session. It reads like state through LikeStore and writes back only via
// the toggle command.
type Recognizer struct {
	clk         clock.Clock
	threshold   float64
	clickBudget time.Duration
	store       LikeStore
	index       *HitIndex
	notifier    *Notifier
	shaker      *ShakeTracker

	mu      sync.Mutex
	mode    Mode
	sess    *session
	onHover func(Hover)
}

func NewRecognizer(clk clock.Clock, threshold float64, clickBudget time.Duration,
	store LikeStore, index *HitIndex, notifier *Notifier, shaker *ShakeTracker) *Recognizer {
	return &Recognizer{
		clk:         clk,
		threshold:   threshold,
		clickBudget: clickBudget,
		store:       store,
		index:       index,
		notifier:    notifier,
		shaker:      shaker,
	}
}

// OnHover registers the drag-feedback observer.
func (r *Recognizer) OnHover(fn func(Hover)) {
	r.mu.Lock()
	r.onHover = fn
	r.mu.Unlock()
}

func (r *Recognizer) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *Recognizer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.sess == nil:
		return StateIdle
	case r.sess.dragged:
		return StateDragging
	default:
		return StateArmed
	}
}

// Offset returns the drag visual's displacement from the widget's rest
// position. Zero while idle.
func (r *Recognizer) Offset() (x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sess == nil {
		return 0, 0
	}
	return r.sess.offsetX, r.sess.offsetY
}

// Press arms a new gesture. originX/originY anchor the drag visual at the
// widget's rest position rather than the raw pointer position. A press while
// another gesture is live is ignored.
func (r *Recognizer) Press(src Source, x, y, originX, originY float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sess != nil {
		return
	}
	r.sess = &session{
		source:  src,
		start:   r.clk.Now(),
		startX:  x,
		startY:  y,
		originX: originX,
		originY: originY,
		canDrop: true,
	}
}

// Move advances the gesture. Below the distance threshold only the visual
// offset tracks; once past it the move also hit-tests for a drop target and
// recomputes legality against live like state.
func (r *Recognizer) Move(src Source, x, y float64) {
	r.mu.Lock()
	if r.sess == nil || r.sess.source != src {
		r.mu.Unlock()
		return
	}
	s := r.sess
	s.offsetX = x - s.originX
	s.offsetY = y - s.originY
	if !s.dragged && math.Hypot(x-s.startX, y-s.startY) > r.threshold {
		s.dragged = true
	}
	if !s.dragged {
		r.mu.Unlock()
		return
	}

	prevHover, prevCan := s.hover, s.canDrop
	id, hit := r.index.At(x, y)
	if hit {
		if liked, known := r.store.IsLiked(id); known {
			s.hover = id
			s.canDrop = r.legal(r.mode, liked)
		} else {
			// Stale rect for a product the store no longer knows.
			s.hover = 0
			s.canDrop = true
		}
	} else {
		s.hover = 0
		s.canDrop = true
	}
	changed := s.hover != prevHover || s.canDrop != prevCan
	hover := Hover{ProductID: s.hover, Mode: r.mode, LikeMode: r.mode == ModeLike, CanDrop: s.canDrop}
	fn := r.onHover
	r.mu.Unlock()

	if changed && fn != nil {
		fn(hover)
	}
}

func (r *Recognizer) legal(mode Mode, liked bool) bool {
	return (mode == ModeLike && !liked) || (mode == ModeUnlike && liked)
}

// Release finishes the gesture and returns its outcome plus the product the
// outcome applies to (drops and blocks only).
func (r *Recognizer) Release(src Source, x, y float64) (Outcome, int64) {
	r.mu.Lock()
	if r.sess == nil || r.sess.source != src {
		r.mu.Unlock()
		return OutcomeNone, 0
	}
	s := r.sess
	elapsed := r.clk.Now().Sub(s.start)

	outcome := OutcomeNone
	var target int64
	var flash string

	switch {
	case !s.dragged && elapsed < r.clickBudget:
		// Click: flip the global mode, never a toggle command.
		if r.mode == ModeLike {
			r.mode = ModeUnlike
		} else {
			r.mode = ModeLike
		}
		outcome = OutcomeModeToggle
	case s.dragged:
		// Legality is decided at release time against live state, with the
		// mode active now.
		if id, hit := r.index.At(x, y); hit {
			if liked, known := r.store.IsLiked(id); known {
				if r.legal(r.mode, liked) {
					outcome, target = OutcomeDrop, id
				} else {
					outcome, target = OutcomeBlocked, id
					if r.mode == ModeLike {
						flash = msgAlreadyLiked
					} else {
						flash = msgNotLiked
					}
				}
			}
		}
	}

	mode := r.mode
	r.sess = nil
	fn := r.onHover
	r.mu.Unlock()

	// Clear hover feedback regardless of outcome.
	if fn != nil {
		fn(Hover{Mode: mode, LikeMode: mode == ModeLike, CanDrop: true})
	}

	switch outcome {
	case OutcomeDrop:
		if err := r.store.ToggleLike(target); err != nil {
			// Target vanished between hit-test and command; treat as no-op.
			return OutcomeNone, 0
		}
	case OutcomeBlocked:
		r.shaker.Trigger(target)
		r.notifier.Flash(flash)
	}
	return outcome, target
}

// Cancel aborts the gesture (pointer-cancel, OS gesture interruption) and
// resets identically to a release without a drop.
func (r *Recognizer) Cancel(src Source) {
	r.mu.Lock()
	if r.sess == nil || r.sess.source != src {
		r.mu.Unlock()
		return
	}
	mode := r.mode
	r.sess = nil
	fn := r.onHover
	r.mu.Unlock()
	if fn != nil {
		fn(Hover{Mode: mode, LikeMode: mode == ModeLike, CanDrop: true})
	}
}
