package auth

import (
	"time"

	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
)

const (
	lockoutKey = "lockout_state"

	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
)

// Lockout counts consecutive failed password attempts and imposes a
// time-boxed lockout once the threshold is reached. State is persisted so a
// lockout survives a reload.
type Lockout struct {
	store contracts.Store
	log   *zap.Logger
	now   func() time.Time

	maxFailures int
	duration    time.Duration
}

func NewLockout(store contracts.Store, log *zap.Logger, maxFailures int, duration time.Duration) *Lockout {
	if maxFailures <= 0 {
		maxFailures = maxLoginAttempts
	}
	if duration <= 0 {
		duration = lockoutDuration
	}
	return &Lockout{
		store:       store,
		log:         log,
		now:         time.Now,
		maxFailures: maxFailures,
		duration:    duration,
	}
}

func (g *Lockout) state() models.LockoutState {
	var st models.LockoutState
	g.store.GetJSON(lockoutKey, &st)
	return st
}

func (g *Lockout) persist(st models.LockoutState) {
	if err := g.store.SetJSON(lockoutKey, st); err != nil {
		g.log.Warn("failed to persist lockout state", zap.Error(err))
	}
}

// IsLocked reports whether an expiry is set and still in the future. A
// passed expiry self-clears as a side effect of the check.
func (g *Lockout) IsLocked() bool {
	st := g.state()
	if st.LockedUntil == nil {
		return false
	}
	if g.now().After(*st.LockedUntil) {
		g.persist(models.LockoutState{})
		return false
	}
	return true
}

// Remaining returns how long the active lockout still holds; zero when not
// locked.
func (g *Lockout) Remaining() time.Duration {
	st := g.state()
	if st.LockedUntil == nil {
		return 0
	}
	remaining := st.LockedUntil.Sub(g.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordFailure increments the counter and, at the threshold, sets the
// lockout expiry. The updated state is returned so callers can report it.
func (g *Lockout) RecordFailure() models.LockoutState {
	st := g.state()
	st.ConsecutiveFailures++
	if st.ConsecutiveFailures >= g.maxFailures && st.LockedUntil == nil {
		until := g.now().Add(g.duration)
		st.LockedUntil = &until
		g.log.Warn("account locked",
			zap.Int("failures", st.ConsecutiveFailures),
			zap.Time("locked_until", until))
	}
	g.persist(st)
	return st
}

// RecordSuccess clears both the counter and any expiry.
func (g *Lockout) RecordSuccess() {
	g.persist(models.LockoutState{})
}

// State exposes the persisted state for the Settings surface.
func (g *Lockout) State() models.LockoutState {
	return g.state()
}
