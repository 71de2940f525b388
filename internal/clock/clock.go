package clock

import (
	"sort"
	"sync"
	"time"
)

// Clock abstracts wall time and one-shot timers so gesture and story timing
// can be driven deterministically in tests. All engine timers go through it;
// nothing in the engine calls time.Now or time.AfterFunc directly.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancelable pending callback. Stop reports whether the callback
// was prevented from running.
type Timer interface {
	Stop() bool
}

func New() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct{ t *time.Timer }

func (s systemTimer) Stop() bool { return s.t.Stop() }

// Mock is a manually advanced Clock for tests.
type Mock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

func NewMock() *Mock {
	return &Mock{now: time.Unix(0, 0)}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Mock) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &mockTimer{clock: m, at: m.now.Add(d), fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in deadline order.
// Callbacks run without the lock held so they may schedule new timers.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.mu.Lock()
		if t.at.After(m.now) {
			m.now = t.at
		}
		m.mu.Unlock()
		t.fn()
	}
	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

func (m *Mock) nextDue(target time.Time) *mockTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	sort.SliceStable(m.timers, func(i, j int) bool { return m.timers[i].at.Before(m.timers[j].at) })
	for i, t := range m.timers {
		if t.stopped {
			continue
		}
		if !t.at.After(target) {
			t.stopped = true
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return t
		}
		break
	}
	return nil
}

type mockTimer struct {
	clock   *Mock
	at      time.Time
	fn      func()
	stopped bool
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}
