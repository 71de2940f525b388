package gesture

import (
	"sync"
	"time"

	"heartdrop/internal/clock"
)

// NoticePhase is the lifecycle of the illegal-drop notification: a brief
// attention shake, a fixed hold, then a fade-out.
type NoticePhase int

const (
	NoticeHidden NoticePhase = iota
	NoticeShaking
	NoticeVisible
	NoticeFading
)

// Notifier runs the timed notification lifecycle. Each Flash bumps a
// generation counter; phase callbacks carry the generation they were armed
// under, so a timer that already fired when a re-flash stopped it can never
// regress the newer notice.
type Notifier struct {
	clk                        clock.Clock
	shakeDur, holdDur, fadeDur time.Duration

	mu       sync.Mutex
	phase    NoticePhase
	message  string
	gen      uint64
	timer    clock.Timer
	onChange func(NoticePhase, string)
}

func NewNotifier(clk clock.Clock, shake, hold, fade time.Duration) *Notifier {
	return &Notifier{clk: clk, shakeDur: shake, holdDur: hold, fadeDur: fade}
}

// OnChange registers a phase observer (the ws client pushes these frames).
func (n *Notifier) OnChange(fn func(NoticePhase, string)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Flash starts (or restarts) the notification with the given message.
func (n *Notifier) Flash(message string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.message = message
	n.mu.Unlock()
	n.transition(gen, NoticeShaking)
}

// Stop cancels the lifecycle without emitting, for connection teardown.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.phase = NoticeHidden
	n.message = ""
}

func (n *Notifier) transition(gen uint64, phase NoticePhase) {
	n.mu.Lock()
	if gen != n.gen {
		// Fired before a re-flash could stop it; the notice it belonged to
		// is gone.
		n.mu.Unlock()
		return
	}
	n.phase = phase
	var next NoticePhase
	var wait time.Duration
	switch phase {
	case NoticeShaking:
		next, wait = NoticeVisible, n.shakeDur
	case NoticeVisible:
		next, wait = NoticeFading, n.holdDur
	case NoticeFading:
		next, wait = NoticeHidden, n.fadeDur
	case NoticeHidden:
		n.message = ""
	}
	if phase != NoticeHidden {
		n.timer = n.clk.AfterFunc(wait, func() { n.transition(gen, next) })
	} else {
		n.timer = nil
	}
	fn, msg := n.onChange, n.message
	n.mu.Unlock()
	if fn != nil {
		fn(phase, msg)
	}
}

// State returns the current phase and message.
func (n *Notifier) State() (NoticePhase, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.phase, n.message
}
