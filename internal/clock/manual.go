package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock for tests. Time stands still until Advance is called;
// due callbacks run synchronously on the caller's goroutine, in schedule
// order, so tests never need real waits.
type Manual struct {
	mu        sync.Mutex
	now       time.Time
	seq       uint64
	scheduled []*manualTimer
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		clock: m,
		when:  m.now.Add(d),
		seq:   m.seq,
		fn:    f,
	}
	m.scheduled = append(m.scheduled, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that comes
// due on the way, each at its exact scheduled instant. Callbacks may
// schedule further callbacks; those fire too if they fall within d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		next := m.popDueLocked(target)
		if next == nil {
			break
		}
		if next.when.After(m.now) {
			m.now = next.when
		}
		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

// popDueLocked removes and returns the earliest non-stopped timer with
// when <= target, or nil if there is none.
func (m *Manual) popDueLocked(target time.Time) *manualTimer {
	sort.SliceStable(m.scheduled, func(i, j int) bool {
		if m.scheduled[i].when.Equal(m.scheduled[j].when) {
			return m.scheduled[i].seq < m.scheduled[j].seq
		}
		return m.scheduled[i].when.Before(m.scheduled[j].when)
	})

	for i, t := range m.scheduled {
		if t.stopped {
			continue
		}
		if t.when.After(target) {
			return nil
		}
		m.scheduled = append(m.scheduled[:i], m.scheduled[i+1:]...)
		return t
	}
	return nil
}

// PendingCount returns the number of scheduled callbacks not yet fired
// or stopped.
func (m *Manual) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, t := range m.scheduled {
		if !t.stopped {
			count++
		}
	}
	return count
}

type manualTimer struct {
	clock   *Manual
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}
	t.stopped = true

	for i, st := range t.clock.scheduled {
		if st == t {
			t.clock.scheduled = append(t.clock.scheduled[:i], t.clock.scheduled[i+1:]...)
			return true
		}
	}
	// already popped for firing, too late to stop
	return false
}
