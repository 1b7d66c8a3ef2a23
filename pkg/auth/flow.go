package auth

import (
	"fmt"

	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
)

// State tracks progress through the three sequential login gates.
type State int

const (
	StateMath State = iota
	StateSecurity
	StatePassword
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateMath:
		return "math"
	case StateSecurity:
		return "security"
	case StatePassword:
		return "password"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Flow drives the challenge sequence: arithmetic, then a knowledge-based
// security question, then the password. The gates are ordered cheapest and
// least sensitive first so a trivial automated attacker is filtered before
// consuming lockout budget on credential guesses.
type Flow struct {
	questions *Questions
	gate      *PasswordGate
	log       *zap.Logger

	// authenticate runs the caller's terminal side effects (authorization
	// flag, session) after the gate accepts the password.
	authenticate func() error

	state     State
	challenge models.MathChallenge
	question  models.SecurityQuestion
}

func NewFlow(questions *Questions, gate *PasswordGate, log *zap.Logger, authenticate func() error) *Flow {
	questions.EnsureDefaults()
	f := &Flow{
		questions:    questions,
		gate:         gate,
		log:          log,
		authenticate: authenticate,
	}
	f.Reset()
	return f
}

func (f *Flow) State() State                      { return f.state }
func (f *Flow) Challenge() models.MathChallenge   { return f.challenge }
func (f *Flow) Question() models.SecurityQuestion { return f.question }

// Reset starts the sequence over with a fresh challenge. In-progress
// challenge state is discarded; the lockout guard is untouched.
func (f *Flow) Reset() {
	f.state = StateMath
	f.challenge = GenerateMathChallenge()
	f.question = models.SecurityQuestion{}
}

// SubmitMath checks the typed answer. Correct advances to the security
// question; anything else regenerates a new challenge and stays. Math
// failures never count toward lockout.
func (f *Flow) SubmitMath(answer string) (bool, error) {
	if f.state != StateMath {
		return false, fmt.Errorf("%w: not at the math step", contracts.ErrValidation)
	}
	ok, err := CheckMathAnswer(f.challenge, answer)
	if err != nil || !ok {
		f.challenge = GenerateMathChallenge()
		return false, err
	}
	question, qerr := f.questions.Random()
	if qerr != nil {
		return false, qerr
	}
	f.state = StateSecurity
	f.question = question
	f.challenge = models.MathChallenge{}
	return true, nil
}

// SubmitSecurity normalizes both sides before comparing. An incorrect answer
// re-selects a random question (possibly the same one) and stays; security
// failures never count toward lockout.
func (f *Flow) SubmitSecurity(answer string) bool {
	if f.state != StateSecurity {
		return false
	}
	if !f.questions.Validate(f.question.ID, answer) {
		if question, err := f.questions.Random(); err == nil {
			f.question = question
		}
		return false
	}
	f.state = StatePassword
	return true
}

// SubmitPassword is the terminal step. Nil means authenticated; the error is
// a LockedOutError, ErrInvalidCredentials, or the authenticate callback's
// failure.
func (f *Flow) SubmitPassword(password string) error {
	if f.state != StatePassword {
		return fmt.Errorf("%w: not at the password step", contracts.ErrValidation)
	}
	if err := f.gate.Attempt(password); err != nil {
		return err
	}
	if f.authenticate != nil {
		if err := f.authenticate(); err != nil {
			f.log.Error("post-login setup failed", zap.Error(err))
			return err
		}
	}
	f.state = StateAuthenticated
	return nil
}
