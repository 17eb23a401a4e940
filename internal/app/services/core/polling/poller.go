package polling

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/backend_dto"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type OutcomeKind string

const (
	OutcomeCompleted         OutcomeKind = "COMPLETED"
	OutcomeFailed            OutcomeKind = "FAILED"
	OutcomeTimedOut          OutcomeKind = "TIMED_OUT"
	OutcomeSessionVanished   OutcomeKind = "SESSION_VANISHED"
	OutcomeResultFetchFailed OutcomeKind = "RESULT_FETCH_FAILED"
)

// Outcome is delivered to the terminal callback exactly once per scheduler
// run. Result is set only for OutcomeCompleted; Status carries the last
// status report the backend returned, when one exists.
type Outcome struct {
	Kind   OutcomeKind
	Result *backend_dto.ResultPayload
	Status *models.ProcessingStatus
	Err    error
}

type StatusFunc func(ctx context.Context) (*backend_dto.ProcessingStatusDTO, error)
type ResultFunc func(ctx context.Context) (*backend_dto.ResultPayload, error)

// Scheduler drives the status checks for one submitted session: one check
// after InitialDelay, then one per Interval, up to MaxAttempts checks in
// total. Errors on a check consume an attempt like any other non-terminal
// report, except a vanished session, which ends the run immediately.
type Scheduler struct {
	SessionID    string
	InitialDelay time.Duration
	Interval     time.Duration
	MaxAttempts  int

	FetchStatus StatusFunc
	FetchResult ResultFunc
	OnStatus    func(status models.ProcessingStatus)
	OnTerminal  func(outcome Outcome)

	Log *zap.Logger

	attempts   atomic.Int32
	cancelOnce sync.Once
	cancelled  chan struct{}
}

func NewScheduler(sessionID string, initialDelay, interval time.Duration, maxAttempts int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		SessionID:    sessionID,
		InitialDelay: initialDelay,
		Interval:     interval,
		MaxAttempts:  maxAttempts,
		Log:          logger,
		cancelled:    make(chan struct{}),
	}
}

// Attempts reports how many status checks have been issued so far.
func (s *Scheduler) Attempts() int {
	return int(s.attempts.Load())
}

// Cancel stops the run without delivering a terminal outcome. Safe to call
// more than once and safe to call after the run already finished.
func (s *Scheduler) Cancel() {
	s.cancelOnce.Do(func() {
		close(s.cancelled)
	})
}

// Start launches the polling loop on its own goroutine and returns
// immediately. The loop ends on a terminal report, an exhausted attempt
// budget, cancellation, or context expiry; only the first two reach
// OnTerminal.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	timer := time.NewTimer(s.InitialDelay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.cancelled:
			s.Log.Debug("polling.Scheduler cancelled",
				zap.String(constvars.LoggingSessionIDKey, s.SessionID),
				zap.Int(constvars.LoggingAttemptKey, s.Attempts()),
			)
			return
		case <-timer.C:
		}

		attempt := int(s.attempts.Add(1))
		done := s.check(ctx, attempt)
		if done {
			return
		}
		if attempt >= s.MaxAttempts {
			s.Log.Warn("polling.Scheduler attempt budget exhausted",
				zap.String(constvars.LoggingSessionIDKey, s.SessionID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
			)
			s.OnTerminal(Outcome{Kind: OutcomeTimedOut})
			return
		}
		timer.Reset(s.Interval)
	}
}

// check performs one status probe and reports whether the run is over.
func (s *Scheduler) check(ctx context.Context, attempt int) bool {
	statusDTO, err := s.FetchStatus(ctx)
	if err != nil {
		if exceptions.IsSessionVanished(err) {
			s.Log.Error("polling.Scheduler session vanished",
				zap.String(constvars.LoggingSessionIDKey, s.SessionID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
				zap.Error(err),
			)
			s.OnTerminal(Outcome{Kind: OutcomeSessionVanished, Err: err})
			return true
		}
		// Transient check failures burn an attempt and wait for the next tick.
		s.Log.Warn("polling.Scheduler status check failed",
			zap.String(constvars.LoggingSessionIDKey, s.SessionID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)
		return false
	}

	status := models.ProcessingStatus{
		SessionID:       statusDTO.SessionID,
		State:           models.ParseProcessingState(statusDTO.State),
		ProgressPercent: statusDTO.ProgressPercent,
		Message:         statusDTO.Message,
	}
	if status.SessionID == "" {
		status.SessionID = s.SessionID
	}

	if !status.State.Terminal() && statusDTO.Completed {
		// Some backend builds flip the completed flag before the state field.
		status.State = models.ProcessingCompleted
	}

	if !status.State.Terminal() {
		if s.OnStatus != nil {
			s.OnStatus(status)
		}
		return false
	}

	if status.State == models.ProcessingError {
		s.OnTerminal(Outcome{Kind: OutcomeFailed, Status: &status})
		return true
	}

	result, err := s.FetchResult(ctx)
	if err != nil {
		s.Log.Error("polling.Scheduler result fetch failed",
			zap.String(constvars.LoggingSessionIDKey, s.SessionID),
			zap.Error(err),
		)
		s.OnTerminal(Outcome{Kind: OutcomeResultFetchFailed, Status: &status, Err: err})
		return true
	}
	s.OnTerminal(Outcome{Kind: OutcomeCompleted, Status: &status, Result: result})
	return true
}
