package portfolio

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-core/pkg/auth"
	"portfolio-core/pkg/config"
	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
	"portfolio-core/pkg/repository"
	"portfolio-core/pkg/session"
	"portfolio-core/pkg/storage"
)

const (
	personalInfoKey = "portfolio_personal_info"
	projectsKey     = "portfolio_projects"
	skillsKey       = "portfolio_skills"
	experiencesKey  = "portfolio_experiences"
	educationKey    = "portfolio_education"

	// portfolioKeyPrefix selects which change events trigger a snapshot
	// re-read.
	portfolioKeyPrefix = "portfolio_"
)

// Snapshot is the aggregated read model one view renders.
type Snapshot struct {
	IsAdmin      bool
	PersonalInfo models.PersonalInfo
	Projects     []models.Project
	Skills       []models.Skill
	Experiences  []models.Experience
	Education    []models.Education
}

// Facade aggregates the authorization flag, the personal-info singleton, and
// the four entity repositories into one read/write API for the presentation
// layer. It refreshes its snapshot on change-bus events, on the fallback
// poll, and immediately after each of its own mutations.
type Facade struct {
	store contracts.Store
	bus   contracts.Bus
	log   *zap.Logger

	viewID string
	flag   *AdminFlag

	personal    *repository.Singleton[models.PersonalInfo]
	projects    *repository.Repository[models.Project]
	skills      *repository.Repository[models.Skill]
	experiences *repository.Repository[models.Experience]
	education   *repository.Repository[models.Education]

	questions *auth.Questions
	passwords *auth.Passwords
	lockout   *auth.Lockout
	attempts  *auth.Attempts
	gate      *auth.PasswordGate
	sessions  *session.Manager

	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []chan Snapshot
	closed    bool

	cancel context.CancelFunc

	// timerMu guards authCancel: the expiry-timer goroutine writes it through
	// Logout while the owning goroutine logs in or closes the view.
	timerMu    sync.Mutex
	authCancel context.CancelFunc
}

// New wires one view's facade over a shared store and bus and starts its
// watch loop. Close must be called when the view unmounts.
func New(store contracts.Store, bus contracts.Bus, settings config.Settings, log *zap.Logger, seed models.PortfolioData) *Facade {
	f := &Facade{
		store:  store,
		bus:    bus,
		log:    log,
		viewID: uuid.NewString(),
	}
	f.flag = NewAdminFlag(store)
	gate := repository.Gate(f.flag.IsAdmin)

	f.personal = repository.NewSingleton(store, gate, log, personalInfoKey, seed.PersonalInfo)
	f.projects = repository.New(store, gate, log, projectsKey, "proj", seed.Projects)
	f.skills = repository.New(store, gate, log, skillsKey, "skill", seed.Skills)
	f.experiences = repository.New(store, gate, log, experiencesKey, "exp", seed.Experiences)
	f.education = repository.New(store, gate, log, educationKey, "edu", seed.Education)

	f.questions = auth.NewQuestions(store, log)
	f.passwords = auth.NewPasswords(store, settings.DefaultPassword)
	f.lockout = auth.NewLockout(store, log, settings.MaxLoginAttempts, settings.LockoutDuration)
	f.attempts = auth.NewAttempts(store, log)
	f.gate = auth.NewPasswordGate(f.lockout, f.attempts, f.passwords, log)
	f.sessions = session.NewManager(store, log, settings.ClientDescriptor, settings.TokenSecret,
		settings.SessionTimeout, settings.HeartbeatInterval)

	f.refresh()

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	events := bus.Subscribe(f.viewID)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case key, ok := <-events:
				if !ok {
					return
				}
				if strings.HasPrefix(key, portfolioKeyPrefix) {
					f.refresh()
				}
			}
		}
	}()

	pollInterval := settings.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	storage.NewPoller(pollInterval, f.refresh).Start(ctx)

	return f
}

// Close cancels the watch loop and any session timers and closes every
// listener channel so consumers ranging over them return. Safe to call more
// than once.
func (f *Facade) Close() {
	f.cancelSessionTimers()
	f.cancel()
	f.bus.Unsubscribe(f.viewID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for _, ch := range f.listeners {
		close(ch)
	}
	f.listeners = nil
}

// Snapshot returns the current aggregated state.
func (f *Facade) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot
}

// Listen registers a snapshot listener. Sends are non-blocking; a listener
// that falls behind misses intermediate snapshots, never the final one it
// re-reads via Snapshot. The channel is closed when the facade closes; on an
// already-closed facade the returned channel is closed immediately.
func (f *Facade) Listen() <-chan Snapshot {
	ch := make(chan Snapshot, 8)
	f.mu.Lock()
	if f.closed {
		close(ch)
	} else {
		f.listeners = append(f.listeners, ch)
	}
	f.mu.Unlock()
	return ch
}

func (f *Facade) refresh() {
	snap := Snapshot{
		IsAdmin:      f.flag.IsAdmin(),
		PersonalInfo: f.personal.Get(),
		Projects:     f.projects.GetAll(),
		Skills:       f.skills.GetAll(),
		Experiences:  f.experiences.GetAll(),
		Education:    f.education.GetAll(),
	}

	f.mu.Lock()
	f.snapshot = snap
	// Sends stay under the lock so Close never closes a channel mid-send.
	// They cannot block: each listener channel is buffered and the full case
	// drops the event.
	for _, ch := range f.listeners {
		select {
		case ch <- snap:
		default:
		}
	}
	f.mu.Unlock()
}

// --- Authentication ---

// NewLoginFlow starts the three-step challenge sequence. The terminal
// password step delegates back into this facade for the flag and session
// side effects.
func (f *Facade) NewLoginFlow() *auth.Flow {
	return auth.NewFlow(f.questions, f.gate, f.log, f.completeLogin)
}

// Login evaluates only the password gate, for callers that already passed
// the math and security steps (or for the Settings re-auth prompt).
func (f *Facade) Login(password string) error {
	if err := f.gate.Attempt(password); err != nil {
		return err
	}
	return f.completeLogin()
}

func (f *Facade) completeLogin() error {
	if err := f.flag.Set(true); err != nil {
		return err
	}
	s, err := f.sessions.Create()
	if err != nil {
		return err
	}
	f.startSessionTimers(s)
	f.refresh()
	return nil
}

// Restore resumes a persisted session across a restart. It reports false
// when no valid, unexpired session exists.
func (f *Facade) Restore() bool {
	s, ok := f.sessions.Restore()
	if !ok {
		return false
	}
	if err := f.flag.Set(true); err != nil {
		f.log.Warn("failed to set authorization flag on restore", zap.Error(err))
	}
	f.startSessionTimers(s)
	f.refresh()
	return true
}

func (f *Facade) cancelSessionTimers() {
	f.timerMu.Lock()
	defer f.timerMu.Unlock()
	if f.authCancel != nil {
		f.authCancel()
		f.authCancel = nil
	}
}

func (f *Facade) startSessionTimers(s models.Session) {
	ctx, cancel := context.WithCancel(context.Background())
	f.timerMu.Lock()
	if f.authCancel != nil {
		f.authCancel()
	}
	f.authCancel = cancel
	f.timerMu.Unlock()
	f.sessions.StartHeartbeat(ctx)
	f.sessions.StartExpiryTimer(ctx, s, func() {
		f.log.Info("session expired, forcing logout")
		f.Logout()
	})
}

// Logout terminates this view's session and clears the authorization flag.
// Also called from the expiry-timer goroutine when the session times out.
func (f *Facade) Logout() {
	f.cancelSessionTimers()
	f.sessions.Logout()
	if err := f.flag.Set(false); err != nil {
		f.log.Warn("failed to clear authorization flag", zap.Error(err))
	}
	f.refresh()
}

func (f *Facade) IsAuthenticated() bool {
	return f.sessions.CurrentID() != ""
}

func (f *Facade) ValidateCurrentPassword(candidate string) bool {
	return f.passwords.Validate(candidate)
}

func (f *Facade) UpdatePassword(newPassword string) error {
	if !f.flag.IsAdmin() {
		return contracts.ErrUnauthorized
	}
	return f.passwords.Update(newPassword)
}

// SaveSecurityQuestions replaces the configured question selection.
func (f *Facade) SaveSecurityQuestions(questionIDs []string, answers map[string]string) error {
	if !f.flag.IsAdmin() {
		return contracts.ErrUnauthorized
	}
	return f.questions.Save(questionIDs, answers)
}

// --- Settings Introspection ---

func (f *Facade) Sessions() []models.Session          { return f.sessions.Active() }
func (f *Facade) LoginHistory() []models.LoginAttempt { return f.attempts.History() }
func (f *Facade) LockoutState() models.LockoutState   { return f.lockout.State() }

func (f *Facade) RevokeSession(sessionID string) error {
	if !f.flag.IsAdmin() {
		return contracts.ErrUnauthorized
	}
	f.sessions.Terminate(sessionID)
	return nil
}

func (f *Facade) RevokeOtherSessions() error {
	if !f.flag.IsAdmin() {
		return contracts.ErrUnauthorized
	}
	f.sessions.TerminateAllOthers()
	return nil
}

// --- Content Mutations ---
//
// Each triple delegates to its repository and refreshes the snapshot
// immediately, so the caller observes its own mutation without waiting for
// the notifier round-trip.

func (f *Facade) SetPersonalInfo(info models.PersonalInfo) error {
	if err := f.personal.Set(info); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) AddProject(p models.Project) (models.Project, error) {
	added, err := f.projects.Add(p)
	if err != nil {
		return models.Project{}, err
	}
	f.refresh()
	return added, nil
}

func (f *Facade) UpdateProject(id string, p models.Project) error {
	if err := f.projects.Update(id, p); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) DeleteProject(id string) error {
	if err := f.projects.Delete(id); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) AddSkill(s models.Skill) (models.Skill, error) {
	added, err := f.skills.Add(s)
	if err != nil {
		return models.Skill{}, err
	}
	f.refresh()
	return added, nil
}

func (f *Facade) UpdateSkill(id string, s models.Skill) error {
	if err := f.skills.Update(id, s); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) DeleteSkill(id string) error {
	if err := f.skills.Delete(id); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) AddExperience(e models.Experience) (models.Experience, error) {
	added, err := f.experiences.Add(e)
	if err != nil {
		return models.Experience{}, err
	}
	f.refresh()
	return added, nil
}

func (f *Facade) UpdateExperience(id string, e models.Experience) error {
	if err := f.experiences.Update(id, e); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) DeleteExperience(id string) error {
	if err := f.experiences.Delete(id); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) AddEducation(e models.Education) (models.Education, error) {
	added, err := f.education.Add(e)
	if err != nil {
		return models.Education{}, err
	}
	f.refresh()
	return added, nil
}

func (f *Facade) UpdateEducation(id string, e models.Education) error {
	if err := f.education.Update(id, e); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Facade) DeleteEducation(id string) error {
	if err := f.education.Delete(id); err != nil {
		return err
	}
	f.refresh()
	return nil
}
