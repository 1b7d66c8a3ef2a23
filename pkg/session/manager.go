package session

import (
	"context"
	"sync"
	"time"

	"github.com/oarkflow/xid/wuid"
	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
)

const (
	sessionsKey     = "active_sessions"
	currentIDKey    = "current_session_id"
	currentTokenKey = "current_session_token"

	// DefaultTimeout is the inactivity window after which a session expires.
	DefaultTimeout = 8 * time.Hour
	// DefaultHeartbeat is how often an authenticated view refreshes its
	// session's last-activity time.
	DefaultHeartbeat = 5 * time.Minute
)

// Manager issues sessions on login, tracks activity, and keeps the shared
// active-session collection that every view sees for multi-session
// bookkeeping.
type Manager struct {
	store contracts.Store
	log   *zap.Logger
	now   func() time.Time

	timeout          time.Duration
	heartbeatEvery   time.Duration
	clientDescriptor string
	secret           []byte

	// mu guards currentID, which the heartbeat goroutine reads while the
	// owning view logs in and out.
	mu        sync.Mutex
	currentID string
}

func NewManager(store contracts.Store, log *zap.Logger, clientDescriptor string, secret []byte, timeout, heartbeat time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &Manager{
		store:            store,
		log:              log,
		now:              time.Now,
		timeout:          timeout,
		heartbeatEvery:   heartbeat,
		clientDescriptor: clientDescriptor,
		secret:           secret,
	}
}

// Create mints a new session, appends it to the shared collection, and
// persists the session id and token as current for this view.
func (m *Manager) Create() (models.Session, error) {
	now := m.now()
	s := models.Session{
		ID:               "sess_" + wuid.New().String(),
		StartTime:        now,
		LastActivity:     now,
		ClientDescriptor: m.clientDescriptor,
		Current:          true,
	}

	sessions := append(m.load(), s)
	if err := m.store.SetJSON(sessionsKey, sessions); err != nil {
		return models.Session{}, err
	}
	if err := m.store.Set(currentIDKey, []byte(s.ID)); err != nil {
		return models.Session{}, err
	}
	tok, err := m.mintToken(s.ID)
	if err != nil {
		return models.Session{}, err
	}
	if err := m.store.Set(currentTokenKey, []byte(tok)); err != nil {
		return models.Session{}, err
	}

	m.setCurrent(s.ID)
	m.log.Info("session created", zap.String("session_id", s.ID))
	return s, nil
}

func (m *Manager) load() []models.Session {
	var sessions []models.Session
	m.store.GetJSON(sessionsKey, &sessions)
	return sessions
}

// Active lists the shared session collection with Current recomputed from
// this view's perspective.
func (m *Manager) Active() []models.Session {
	current := m.CurrentID()
	sessions := m.load()
	for i := range sessions {
		sessions[i].Current = sessions[i].ID == current
	}
	return sessions
}

// CurrentID is the session this view created or restored; empty when the
// view is not authenticated.
func (m *Manager) CurrentID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentID
}

func (m *Manager) setCurrent(id string) {
	m.mu.Lock()
	m.currentID = id
	m.mu.Unlock()
}

// Heartbeat bumps the session's last-activity time to now.
func (m *Manager) Heartbeat(sessionID string) {
	sessions := m.load()
	for i := range sessions {
		if sessions[i].ID == sessionID {
			sessions[i].LastActivity = m.now()
		}
	}
	if err := m.store.SetJSON(sessionsKey, sessions); err != nil {
		m.log.Warn("failed to update session activity", zap.Error(err))
	}
}

// Expired reports whether more than the timeout has passed since the
// session's last recorded activity.
func (m *Manager) Expired(s models.Session) bool {
	return m.now().Sub(s.LastActivity) > m.timeout
}

// Remaining is the time until the session hits its timeout, used to arm the
// single expiry timer. Zero or negative means already expired.
func (m *Manager) Remaining(s models.Session) time.Duration {
	return s.LastActivity.Add(m.timeout).Sub(m.now())
}

// Terminate removes a session from the shared collection. Used both for
// self-logout and for revoking another session from the Settings surface.
func (m *Manager) Terminate(sessionID string) {
	sessions := m.load()
	filtered := sessions[:0:0]
	for _, s := range sessions {
		if s.ID != sessionID {
			filtered = append(filtered, s)
		}
	}
	if err := m.store.SetJSON(sessionsKey, filtered); err != nil {
		m.log.Warn("failed to terminate session", zap.String("session_id", sessionID), zap.Error(err))
		return
	}
	if sessionID == m.CurrentID() {
		m.clearCurrent()
	}
}

// TerminateAllOthers keeps only this view's session.
func (m *Manager) TerminateAllOthers() {
	current := m.CurrentID()
	if current == "" {
		return
	}
	sessions := m.load()
	kept := sessions[:0:0]
	for _, s := range sessions {
		if s.ID == current {
			kept = append(kept, s)
		}
	}
	if err := m.store.SetJSON(sessionsKey, kept); err != nil {
		m.log.Warn("failed to terminate other sessions", zap.Error(err))
	}
}

// Restore resumes the persisted current session if its token verifies and it
// has not expired; otherwise it cleans up and reports false.
func (m *Manager) Restore() (models.Session, bool) {
	rawID, ok, err := m.store.Get(currentIDKey)
	if err != nil || !ok || len(rawID) == 0 {
		return models.Session{}, false
	}
	rawTok, ok, err := m.store.Get(currentTokenKey)
	if err != nil || !ok {
		m.clearCurrent()
		return models.Session{}, false
	}
	sid, valid := m.verifyToken(string(rawTok))
	if !valid || sid != string(rawID) {
		m.log.Warn("stored session token invalid, discarding")
		m.clearCurrent()
		return models.Session{}, false
	}

	for _, s := range m.load() {
		if s.ID != sid {
			continue
		}
		if m.Expired(s) {
			m.log.Info("session_expired", zap.String("session_id", sid))
			m.Terminate(sid)
			return models.Session{}, false
		}
		m.setCurrent(sid)
		m.Heartbeat(sid)
		s.Current = true
		return s, true
	}
	m.clearCurrent()
	return models.Session{}, false
}

func (m *Manager) clearCurrent() {
	m.setCurrent("")
	_ = m.store.Delete(currentIDKey)
	_ = m.store.Delete(currentTokenKey)
}

// Logout terminates this view's session and drops the persisted current
// markers.
func (m *Manager) Logout() {
	if current := m.CurrentID(); current != "" {
		m.Terminate(current)
	}
	m.clearCurrent()
}

// StartHeartbeat refreshes last-activity on a fixed interval until ctx is
// cancelled.
func (m *Manager) StartHeartbeat(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.heartbeatEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if current := m.CurrentID(); current != "" {
					m.Heartbeat(current)
				}
			}
		}
	}()
}

// StartExpiryTimer arms a single timer for exactly the remaining time until
// the timeout mark from the last recorded activity. Firing forces logout via
// onExpire; cancellation happens through ctx when the view unmounts.
func (m *Manager) StartExpiryTimer(ctx context.Context, s models.Session, onExpire func()) {
	remaining := m.Remaining(s)
	if remaining <= 0 {
		onExpire()
		return
	}
	go func() {
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			m.log.Info("session_expired", zap.String("session_id", s.ID))
			onExpire()
		}
	}()
}
