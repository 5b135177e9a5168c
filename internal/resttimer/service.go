package resttimer

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/gymrest/internal/clock"
	"github.com/2beens/gymrest/internal/telemetry/metrics"
	"github.com/2beens/gymrest/internal/telemetry/tracing"
	"github.com/2beens/gymrest/pkg"

	log "github.com/sirupsen/logrus"
)

const persistTimeout = 2 * time.Second

// RestResult is the bookkeeping record of one finished rest: either the
// grace window elapsed untouched (Completed) or the user skipped. The
// zero-crossing instant is the true one captured when remaining hit zero,
// not when the completion callback fired.
type RestResult struct {
	SessionDigest  string
	PlannedSeconds int
	ActualSeconds  int
	Completed      bool
	ZeroCrossingAt time.Time
}

type ServiceOptions struct {
	Clock              clock.Clock
	Store              SnapshotStore
	Notifier           Notifier
	Metrics            *metrics.Manager
	DefaultRestSeconds int
	// OnRestFinished receives completed/skipped rests, e.g. to record them
	// for rest analytics. Never nil-checked at call sites, set by New.
	OnRestFinished func(ctx context.Context, result RestResult)
}

// Service hosts one rest timer engine per client session and keeps the
// persisted snapshot in sync, so a client that navigates away or reloads
// finds its countdown where the wall clock says it should be.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session

	clk                clock.Clock
	store              SnapshotStore
	notifier           Notifier
	metrics            *metrics.Manager
	defaultRestSeconds int
	onRestFinished     func(ctx context.Context, result RestResult)
}

type session struct {
	timer          *Timer
	plannedSeconds int

	// group is the session's superset countdown engine, created on the
	// first group start and torn down with the session.
	group               *GroupRest
	groupPlannedSeconds int
}

func NewService(opts ServiceOptions) *Service {
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{}
	}
	if opts.DefaultRestSeconds <= 0 {
		opts.DefaultRestSeconds = 90
	}
	if opts.OnRestFinished == nil {
		opts.OnRestFinished = func(context.Context, RestResult) {}
	}

	return &Service{
		sessions:           make(map[string]*session),
		clk:                opts.Clock,
		store:              opts.Store,
		notifier:           opts.Notifier,
		metrics:            opts.Metrics,
		defaultRestSeconds: opts.DefaultRestSeconds,
		onRestFinished:     opts.OnRestFinished,
	}
}

// StartRest begins (or supersedes) the countdown of the given session.
func (s *Service) StartRest(ctx context.Context, sessionID string, durationSeconds int) State {
	_, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.start")
	defer span.End()

	sess := s.getOrCreateSession(sessionID)
	sess.plannedSeconds = durationSeconds
	sess.timer.Start(durationSeconds)

	if s.metrics != nil {
		s.metrics.CounterRestTimersStarted.Inc()
	}
	return sess.timer.State()
}

func (s *Service) PauseRest(ctx context.Context, sessionID string) State {
	_, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.pause")
	defer span.End()

	sess := s.getOrCreateSession(sessionID)
	sess.timer.Pause()
	s.persistSnapshot(sessionID, sess.timer)
	return sess.timer.State()
}

func (s *Service) ResumeRest(ctx context.Context, sessionID string) State {
	_, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.resume")
	defer span.End()

	sess := s.getOrCreateSession(sessionID)
	sess.timer.Resume()
	return sess.timer.State()
}

func (s *Service) AdjustRest(ctx context.Context, sessionID string, deltaSeconds int) State {
	_, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.adjust")
	defer span.End()

	sess := s.getOrCreateSession(sessionID)
	before := sess.timer.State()
	sess.timer.Adjust(deltaSeconds)
	after := sess.timer.State()

	if s.metrics != nil &&
		before.Phase == PhaseCompleting && after.Phase == PhaseCounting {
		s.metrics.CounterRestTimersReversed.Inc()
	}
	return after
}

func (s *Service) SkipRest(ctx context.Context, sessionID string) State {
	_, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.skip")
	defer span.End()

	sess := s.getOrCreateSession(sessionID)
	sess.timer.Skip()
	return sess.timer.State()
}

// RestState reports the session's countdown. With no live engine but a
// persisted snapshot, the run is first restored through drift correction,
// so a reloaded client lands exactly where the wall clock left it.
func (s *Service) RestState(ctx context.Context, sessionID string) State {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.state")
	defer span.End()

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if ok {
		return sess.timer.State()
	}

	sess = s.getOrCreateSession(sessionID)
	if s.store == nil {
		return sess.timer.State()
	}

	snap, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		log.Warnf("rest timer service: load snapshot for session [%s]: %s", pkg.TokenDigest(sessionID), err)
		return sess.timer.State()
	}
	if !found {
		return sess.timer.State()
	}

	sess.timer.Restore(snap, s.defaultRestSeconds)
	state := sess.timer.State()
	if state.OriginalDurationSeconds > 0 {
		sess.plannedSeconds = state.OriginalDurationSeconds
	}
	return state
}

// StartGroupRest runs the superset variant: no grace window, completion
// fires the instant remaining reaches zero, nothing is persisted. The
// engine lives in the session registry, so a new start supersedes the
// in-flight group run and session teardown cancels it.
func (s *Service) StartGroupRest(ctx context.Context, sessionID string, durationSeconds int) State {
	_, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.group.start")
	defer span.End()

	sess := s.getOrCreateSession(sessionID)
	digest := pkg.TokenDigest(sessionID)

	s.mu.Lock()
	if sess.group == nil {
		sess.group = NewGroupRest(Options{
			Clock:    s.clk,
			Notifier: s.notifier,
			Callbacks: Callbacks{
				OnComplete: func(instant time.Time) {
					log.Debugf("group rest done for session [%s]", digest)
					s.finishRest(digest, sess.groupPlannedSeconds, sess.groupPlannedSeconds, true, instant)
				},
				OnSkip: func(remainingAtSkip int) {
					actual := sess.groupPlannedSeconds - remainingAtSkip
					if actual < 0 {
						actual = 0
					}
					s.finishRest(digest, sess.groupPlannedSeconds, actual, false, time.Time{})
				},
			},
		})
	}
	sess.groupPlannedSeconds = durationSeconds
	group := sess.group
	s.mu.Unlock()

	group.Start(durationSeconds)

	if s.metrics != nil {
		s.metrics.CounterRestTimersStarted.Inc()
	}
	return group.State()
}

// SkipGroupRest abandons the session's running group rest, if any.
func (s *Service) SkipGroupRest(ctx context.Context, sessionID string) State {
	_, span := tracing.GlobalTracer.Start(ctx, "resttimer.service.group.skip")
	defer span.End()

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	var group *GroupRest
	if ok {
		group = sess.group
	}
	s.mu.Unlock()

	if group == nil {
		return State{Phase: PhaseIdle}
	}
	group.Skip()
	return group.State()
}

// DestroySession tears the session's engine down, cancelling all of its
// scheduled work. Called when the client session ends.
func (s *Service) DestroySession(sessionID string) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if ok {
		sess.timer.Destroy()
		if sess.group != nil {
			sess.group.Destroy()
		}
		if s.metrics != nil {
			s.metrics.GaugeActiveRestTimers.Dec()
		}
	}
}

// Shutdown persists a final snapshot for every countdown still in flight
// and destroys all session engines. Group rests are not persisted, they
// simply stop.
func (s *Service) Shutdown() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*session)
	s.mu.Unlock()

	for sessionID, sess := range sessions {
		if state := sess.timer.State(); state.Phase == PhaseCounting && state.RemainingSeconds > 0 {
			s.persistSnapshot(sessionID, sess.timer)
		}
		sess.timer.Destroy()
		if sess.group != nil {
			sess.group.Destroy()
		}
	}
	if s.metrics != nil {
		s.metrics.GaugeActiveRestTimers.Set(0)
	}
}

// TODO: evict sessions whose timer sat idle for hours, the map only grows
// until Shutdown right now

func (s *Service) getOrCreateSession(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}

	sess := &session{}
	digest := pkg.TokenDigest(sessionID)
	sess.timer = New(Options{
		Clock:    s.clk,
		Notifier: s.notifier,
		Callbacks: Callbacks{
			OnTick: func(remainingSeconds int) {
				s.persistSnapshot(sessionID, sess.timer)
			},
			OnComplete: func(instant time.Time) {
				s.clearSnapshot(sessionID)
				s.finishRest(digest, sess.plannedSeconds, sess.plannedSeconds, true, instant)
			},
			OnSkip: func(remainingAtSkip int) {
				s.clearSnapshot(sessionID)
				actual := sess.plannedSeconds - remainingAtSkip
				if actual < 0 {
					actual = 0
				}
				s.finishRest(digest, sess.plannedSeconds, actual, false, time.Time{})
			},
		},
	})

	s.sessions[sessionID] = sess
	if s.metrics != nil {
		s.metrics.GaugeActiveRestTimers.Inc()
	}
	return sess
}

func (s *Service) finishRest(sessionDigest string, planned, actual int, completed bool, zeroCrossingAt time.Time) {
	if s.metrics != nil {
		if completed {
			s.metrics.CounterRestTimersCompleted.Inc()
		} else {
			s.metrics.CounterRestTimersSkipped.Inc()
		}
		s.metrics.HistRestDuration.Observe(float64(actual))
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	s.onRestFinished(ctx, RestResult{
		SessionDigest:  sessionDigest,
		PlannedSeconds: planned,
		ActualSeconds:  actual,
		Completed:      completed,
		ZeroCrossingAt: zeroCrossingAt,
	})
}

func (s *Service) persistSnapshot(sessionID string, timer *Timer) {
	if s.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.store.Save(ctx, sessionID, timer.Snapshot()); err != nil {
		log.Errorf("rest timer service: persist snapshot for session [%s]: %s", pkg.TokenDigest(sessionID), err)
	}
}

func (s *Service) clearSnapshot(sessionID string) {
	if s.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.store.Delete(ctx, sessionID); err != nil {
		log.Errorf("rest timer service: clear snapshot for session [%s]: %s", pkg.TokenDigest(sessionID), err)
	}
}
