package auth

import (
	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
)

// PasswordGate evaluates the terminal password step: lockout first, then the
// credential, recording every outcome in the attempt history.
type PasswordGate struct {
	lockout   *Lockout
	attempts  *Attempts
	passwords *Passwords
	log       *zap.Logger
}

func NewPasswordGate(lockout *Lockout, attempts *Attempts, passwords *Passwords, log *zap.Logger) *PasswordGate {
	return &PasswordGate{lockout: lockout, attempts: attempts, passwords: passwords, log: log}
}

// Attempt returns nil when the password is accepted. A locked account is
// rejected without consuming the failure counter; the rejection still counts
// as a terminal outcome in the history.
func (g *PasswordGate) Attempt(password string) error {
	if g.lockout.IsLocked() {
		g.attempts.Record(false)
		remaining := g.lockout.Remaining()
		g.log.Info("login_locked", zap.Duration("remaining", remaining))
		return &contracts.LockedOutError{
			Until:     g.lockout.now().Add(remaining),
			Remaining: remaining,
		}
	}

	if !g.passwords.Validate(password) {
		st := g.lockout.RecordFailure()
		g.attempts.Record(false)
		g.log.Info("login_failed", zap.Int("consecutive_failures", st.ConsecutiveFailures))
		return contracts.ErrInvalidCredentials
	}

	g.lockout.RecordSuccess()
	g.attempts.Record(true)
	g.log.Info("login_success")
	return nil
}
