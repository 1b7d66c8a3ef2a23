package auth

import (
	"time"

	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
)

const (
	attemptsKey = "login_attempts"

	// maxAttemptHistory bounds the stored ring: most-recent-first, oldest
	// silently dropped.
	maxAttemptHistory = 50
)

// Attempts is the append-only login history. Only terminal password-step
// outcomes are recorded; the math and security steps are not.
type Attempts struct {
	store contracts.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewAttempts(store contracts.Store, log *zap.Logger) *Attempts {
	return &Attempts{store: store, log: log, now: time.Now}
}

func (a *Attempts) Record(success bool) {
	attempt := models.LoginAttempt{
		Timestamp: a.now(),
		Origin:    "local",
		Success:   success,
	}
	history := append([]models.LoginAttempt{attempt}, a.History()...)
	if len(history) > maxAttemptHistory {
		history = history[:maxAttemptHistory]
	}
	if err := a.store.SetJSON(attemptsKey, history); err != nil {
		a.log.Warn("failed to record login attempt", zap.Error(err))
	}
}

func (a *Attempts) History() []models.LoginAttempt {
	var history []models.LoginAttempt
	a.store.GetJSON(attemptsKey, &history)
	return history
}
