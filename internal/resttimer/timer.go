// Package resttimer implements the between-sets rest countdown: a
// one-second-tick state machine with wall-clock drift correction, a
// post-zero grace window during which the run stays reversible, and
// generation-tagged scheduling so a superseded run can never fire its
// completion callback.
package resttimer

import (
	"sync"
	"time"

	"github.com/2beens/gymrest/internal/clock"

	log "github.com/sirupsen/logrus"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseCounting   Phase = "counting"
	PhaseCompleting Phase = "completing"
)

const (
	DefaultTickInterval = time.Second
	// DefaultGraceWindow is the product value for the delay between the
	// countdown reaching zero and the completion callback firing; within
	// it the user can still add time back and keep resting.
	DefaultGraceWindow = 2 * time.Second
	// GraceNone makes completion fire the instant remaining reaches zero
	// (used by the group rest variant).
	GraceNone time.Duration = -1
)

// Callbacks are the engine-to-owner contract. All of them are invoked
// without any engine lock held, so an owner may call back into the timer.
type Callbacks struct {
	// OnTick fires at most once per second while counting, with the new
	// remaining value (including the final 0 before the grace window).
	OnTick func(remainingSeconds int)
	// OnComplete fires exactly once per run that reaches zero and is not
	// skipped or reversed. It carries the true zero-crossing instant, not
	// the instant the grace window ended.
	OnComplete func(completionInstant time.Time)
	// OnSkip fires exactly once if the run is skipped, with the remaining
	// seconds at the moment of skip.
	OnSkip func(remainingSecondsAtSkip int)

	OnPauseChanged func(isPaused bool)
	OnAdjust       func(deltaSeconds int)
}

type Options struct {
	Clock        clock.Clock
	TickInterval time.Duration
	// GraceWindow <= 0 picks DefaultGraceWindow; GraceNone disables it.
	GraceWindow time.Duration
	Notifier    Notifier
	Callbacks   Callbacks
}

// Timer is a single rest countdown engine. It owns exactly one run at a
// time; a new Start/Restore supersedes whatever was in flight. All public
// operations are synchronous and return immediately; their effects on the
// schedule surface through the callbacks.
type Timer struct {
	mu           sync.Mutex
	clk          clock.Clock
	tickInterval time.Duration
	graceWindow  time.Duration
	notifier     Notifier
	callbacks    Callbacks

	phase            Phase
	remaining        int
	originalDuration int
	paused           bool
	startedAt        time.Time // zero while paused or idle
	completionAt     time.Time

	// generation invalidates scheduled callbacks of superseded runs: both
	// the tick and the grace expiry capture it at schedule time and bail
	// out if it moved on by the time they fire.
	generation uint64

	// the two independently cancellable schedules of a run
	tickHandle  clock.Timer
	graceHandle clock.Timer

	destroyed bool
}

// State is a read-only view of the engine, safe to hand to transports.
type State struct {
	Phase                   Phase     `json:"phase"`
	RemainingSeconds        int       `json:"remainingSeconds"`
	OriginalDurationSeconds int       `json:"originalDurationSeconds"`
	IsPaused                bool      `json:"isPaused"`
	StartedAt               time.Time `json:"startedAt,omitzero"`
	Generation              uint64    `json:"-"`
}

func New(opts Options) *Timer {
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.GraceWindow == 0 {
		opts.GraceWindow = DefaultGraceWindow
	}

	return &Timer{
		clk:          opts.Clock,
		tickInterval: opts.TickInterval,
		graceWindow:  opts.GraceWindow,
		notifier:     opts.Notifier,
		callbacks:    opts.Callbacks,
		phase:        PhaseIdle,
	}
}

// Start begins a fresh countdown run. A non-positive duration is a caller
// usage error and is silently ignored, the engine stays idle.
func (t *Timer) Start(durationSeconds int) {
	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}
	if durationSeconds <= 0 {
		log.Debugf("rest timer: ignoring start with duration %d", durationSeconds)
		t.mu.Unlock()
		return
	}

	t.beginRunLocked(durationSeconds, durationSeconds)
	t.mu.Unlock()
}

// Restore resumes a countdown from a persisted snapshot, drift-correcting
// the remaining time through the wall clock. A snapshot that corrects to
// zero goes straight into the completion phase: the grace window was
// presumably missed while the client was suspended. A corrupt snapshot is
// treated as absent and the engine falls back to a fresh run of
// defaultDurationSeconds.
func (t *Timer) Restore(snap Snapshot, defaultDurationSeconds int) {
	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}

	if err := snap.Validate(); err != nil {
		log.Warnf("rest timer: dropping bad snapshot: %s", err)
		if defaultDurationSeconds > 0 {
			t.beginRunLocked(defaultDurationSeconds, defaultDurationSeconds)
		}
		t.mu.Unlock()
		return
	}

	original := snap.RemainingSeconds
	if snap.OriginalDurationSeconds != nil {
		original = *snap.OriginalDurationSeconds
	}

	remaining := snap.RemainingSeconds
	if !snap.IsPaused && snap.StartTimestamp != nil {
		remaining = CorrectedRemaining(t.clk.Now(), *snap.StartTimestamp, original, snap.RemainingSeconds)
	}

	if original <= 0 && remaining <= 0 {
		log.Warnf("rest timer: snapshot holds no usable run, starting fresh")
		if defaultDurationSeconds > 0 {
			t.beginRunLocked(defaultDurationSeconds, defaultDurationSeconds)
		}
		t.mu.Unlock()
		return
	}
	if original < remaining {
		original = remaining
	}

	var fire []func()
	switch {
	case remaining == 0:
		t.cancelSchedulesLocked()
		t.generation++
		t.originalDuration = original
		t.remaining = 0
		t.paused = false
		t.startedAt = time.Time{}
		fire = t.enterCompletingLocked()
	case snap.IsPaused:
		t.cancelSchedulesLocked()
		t.generation++
		t.originalDuration = original
		t.remaining = remaining
		t.paused = true
		t.startedAt = time.Time{}
		t.phase = PhaseCounting
		t.completionAt = time.Time{}
	default:
		t.beginRunLocked(original, remaining)
	}
	t.mu.Unlock()

	for _, f := range fire {
		f()
	}
}

// Pause freezes the countdown; remaining becomes the authoritative value
// and elapsed wall time stops counting against the run. No-op unless
// actively counting.
func (t *Timer) Pause() {
	t.mu.Lock()
	if t.destroyed || t.paused || t.phase != PhaseCounting {
		t.mu.Unlock()
		return
	}

	t.paused = true
	t.startedAt = time.Time{}
	t.cancelTickLocked()
	cb := t.callbacks.OnPauseChanged
	t.mu.Unlock()

	if cb != nil {
		cb(true)
	}
}

// Resume continues a paused countdown from the frozen remaining value.
func (t *Timer) Resume() {
	t.mu.Lock()
	if t.destroyed || !t.paused || t.phase != PhaseCounting {
		t.mu.Unlock()
		return
	}

	t.paused = false
	t.startedAt = t.clk.Now()
	t.scheduleTickLocked()
	cb := t.callbacks.OnPauseChanged
	t.mu.Unlock()

	if cb != nil {
		cb(false)
	}
}

// Adjust adds (positive) or subtracts (negative, floored at zero) seconds
// from the remaining time, in any phase. Adding time while the grace
// window is open reverses the completion: the pending completion callback
// is cancelled for good and the run re-enters counting, because a user who
// adds time right after the buzzer wants to keep resting, not to have the
// stale completion still fire.
func (t *Timer) Adjust(deltaSeconds int) {
	t.mu.Lock()
	if t.destroyed || t.phase == PhaseIdle || deltaSeconds == 0 {
		t.mu.Unlock()
		return
	}

	before := t.remaining
	after := before + deltaSeconds
	if after < 0 {
		after = 0
	}
	t.remaining = after

	var fire []func()
	if cb := t.callbacks.OnAdjust; cb != nil {
		fire = append(fire, func() { cb(deltaSeconds) })
	}

	if t.phase == PhaseCompleting && before == 0 && after > 0 {
		// reversal: the only backward transition out of completing
		t.cancelGraceLocked()
		t.generation++
		t.phase = PhaseCounting
		t.paused = false
		t.startedAt = t.clk.Now()
		t.completionAt = time.Time{}
		t.scheduleTickLocked()
	}

	if cb := t.callbacks.OnTick; cb != nil && t.phase == PhaseCounting {
		remaining := t.remaining
		fire = append(fire, func() { cb(remaining) })
	}
	t.mu.Unlock()

	for _, f := range fire {
		f()
	}
}

// Skip terminates the run immediately. The skip callback gets the
// remaining seconds at the moment of skip so the owner can compute the
// actually rested time. Idempotent: skipping an idle engine does nothing.
func (t *Timer) Skip() {
	t.mu.Lock()
	if t.destroyed || t.phase == PhaseIdle {
		t.mu.Unlock()
		return
	}

	remaining := t.remaining
	t.cancelSchedulesLocked()
	t.generation++
	t.phase = PhaseIdle
	t.paused = false
	t.startedAt = time.Time{}
	t.completionAt = time.Time{}
	cb := t.callbacks.OnSkip
	t.mu.Unlock()

	if cb != nil {
		cb(remaining)
	}
}

// Destroy cancels all scheduled work unconditionally. No callback fires
// after Destroy returns; the timer cannot be reused.
func (t *Timer) Destroy() {
	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}
	t.destroyed = true
	t.cancelSchedulesLocked()
	t.generation++
	t.phase = PhaseIdle
	t.paused = false
	t.startedAt = time.Time{}
	t.mu.Unlock()
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{
		Phase:                   t.phase,
		RemainingSeconds:        t.remaining,
		OriginalDurationSeconds: t.originalDuration,
		IsPaused:                t.paused,
		StartedAt:               t.startedAt,
		Generation:              t.generation,
	}
}

// Snapshot captures the persistable subset of state. The emitted start
// timestamp is the effective anchor (now minus already-elapsed seconds),
// not the raw segment start, so that CorrectedRemaining stays exact even
// after pauses and adjustments shifted remaining away from the original
// schedule.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		RemainingSeconds: t.remaining,
		IsPaused:         t.paused,
	}
	if t.originalDuration > 0 {
		original := t.originalDuration
		s.OriginalDurationSeconds = &original
	}
	if !t.paused && t.phase == PhaseCounting {
		anchor := t.clk.Now().Add(-time.Duration(t.originalDuration-t.remaining) * time.Second)
		s.StartTimestamp = &anchor
	}
	return s
}

// beginRunLocked supersedes any in-flight run with a fresh counting run.
func (t *Timer) beginRunLocked(originalDuration, remaining int) {
	t.cancelSchedulesLocked()
	t.generation++
	t.originalDuration = originalDuration
	t.remaining = remaining
	t.paused = false
	t.startedAt = t.clk.Now()
	t.phase = PhaseCounting
	t.completionAt = time.Time{}
	t.scheduleTickLocked()
}

func (t *Timer) scheduleTickLocked() {
	generation := t.generation
	t.tickHandle = t.clk.AfterFunc(t.tickInterval, func() {
		t.tick(generation)
	})
}

func (t *Timer) tick(generation uint64) {
	t.mu.Lock()
	if t.destroyed || generation != t.generation || t.phase != PhaseCounting || t.paused {
		t.mu.Unlock()
		return
	}

	if t.remaining > 0 {
		t.remaining--
	}
	remaining := t.remaining
	onTick := t.callbacks.OnTick

	var fire []func()
	if remaining > 0 {
		t.scheduleTickLocked()
	} else {
		fire = t.enterCompletingLocked()
	}
	t.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	for _, f := range fire {
		f()
	}
}

// enterCompletingLocked records the true zero-crossing instant, lines up
// the reached-zero side effects and either completes immediately (no grace
// window) or schedules the generation-tagged grace expiry.
func (t *Timer) enterCompletingLocked() []func() {
	t.phase = PhaseCompleting
	t.completionAt = t.clk.Now()
	t.cancelTickLocked()

	var fire []func()
	if n := t.notifier; n != nil {
		fire = append(fire, func() { safeNotifyReachedZero(n) })
	}

	if t.graceWindow == GraceNone {
		fire = append(fire, t.finishLocked()...)
		return fire
	}

	generation := t.generation
	t.graceHandle = t.clk.AfterFunc(t.graceWindow, func() {
		t.graceExpired(generation)
	})
	return fire
}

func (t *Timer) graceExpired(generation uint64) {
	t.mu.Lock()
	if t.destroyed || generation != t.generation || t.phase != PhaseCompleting {
		// stale schedule from a superseded run, expected and dropped
		t.mu.Unlock()
		return
	}
	fire := t.finishLocked()
	t.mu.Unlock()

	for _, f := range fire {
		f()
	}
}

func (t *Timer) finishLocked() []func() {
	t.phase = PhaseIdle
	t.startedAt = time.Time{}
	completionAt := t.completionAt

	if cb := t.callbacks.OnComplete; cb != nil {
		return []func(){func() { cb(completionAt) }}
	}
	return nil
}

func (t *Timer) cancelSchedulesLocked() {
	t.cancelTickLocked()
	t.cancelGraceLocked()
}

func (t *Timer) cancelTickLocked() {
	if t.tickHandle != nil {
		t.tickHandle.Stop()
		t.tickHandle = nil
	}
}

func (t *Timer) cancelGraceLocked() {
	if t.graceHandle != nil {
		t.graceHandle.Stop()
		t.graceHandle = nil
	}
}
