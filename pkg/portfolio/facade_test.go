package portfolio

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-core/pkg/auth"
	"portfolio-core/pkg/config"
	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
	"portfolio-core/pkg/storage"
)

func testSettings() config.Settings {
	return config.Settings{
		DefaultPassword:  auth.DefaultPassword,
		TokenSecret:      []byte("0cc703726a512a2ba17e3b1fd6d89f3a"),
		ClientDescriptor: "test-view",
		SessionTimeout:   8 * time.Hour,
		PollInterval:     20 * time.Millisecond,
	}
}

func newTestFacade(t *testing.T, dbPath string) *Facade {
	t.Helper()
	bus := storage.NewChangeBus()
	store, err := storage.NewSQLiteStore(dbPath, bus, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	f := New(store, bus, testSettings(), zap.NewNop(), DefaultData())
	t.Cleanup(f.Close)
	return f
}

func login(t *testing.T, f *Facade) {
	t.Helper()
	require.NoError(t, f.Login(auth.DefaultPassword))
	require.True(t, f.Snapshot().IsAdmin)
}

func TestSnapshotSeedsFromDefaultData(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))

	snap := f.Snapshot()
	assert.False(t, snap.IsAdmin)
	assert.Equal(t, "Al Mamun Sikder", snap.PersonalInfo.Name)
	assert.NotEmpty(t, snap.Projects)
	assert.NotEmpty(t, snap.Skills)
	assert.NotEmpty(t, snap.Experiences)
	assert.NotEmpty(t, snap.Education)
}

func TestMutationsRequireLogin(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))

	_, err := f.AddProject(models.Project{Title: "Nope"})
	require.ErrorIs(t, err, contracts.ErrUnauthorized)
	require.ErrorIs(t, f.DeleteSkill("s1"), contracts.ErrUnauthorized)
	require.ErrorIs(t, f.SetPersonalInfo(models.PersonalInfo{Name: "X"}), contracts.ErrUnauthorized)
	require.ErrorIs(t, f.UpdatePassword("Aa1!aaaa"), contracts.ErrUnauthorized)
	require.ErrorIs(t, f.RevokeOtherSessions(), contracts.ErrUnauthorized)
}

func TestLoginLogoutLifecycle(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))

	require.ErrorIs(t, f.Login("wrong"), contracts.ErrInvalidCredentials)
	assert.False(t, f.IsAuthenticated())

	login(t, f)
	assert.True(t, f.IsAuthenticated())
	require.Len(t, f.Sessions(), 1)
	assert.True(t, f.Sessions()[0].Current)

	history := f.LoginHistory()
	require.NotEmpty(t, history)
	assert.True(t, history[0].Success)

	f.Logout()
	assert.False(t, f.IsAuthenticated())
	assert.False(t, f.Snapshot().IsAdmin)
	assert.Empty(t, f.Sessions())
}

func TestMutationVisibleImmediately(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))
	login(t, f)

	added, err := f.AddProject(models.Project{Title: "New Thing", Tags: []string{"go"}})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	var found bool
	for _, p := range f.Snapshot().Projects {
		if p.ID == added.ID {
			found = true
		}
	}
	assert.True(t, found, "the caller observes its own mutation without waiting for the notifier")

	require.NoError(t, f.DeleteProject(added.ID))
	for _, p := range f.Snapshot().Projects {
		assert.NotEqual(t, added.ID, p.ID)
	}
}

func TestUpdateEntityRoundTrip(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))
	login(t, f)

	snap := f.Snapshot()
	target := snap.Skills[0]
	target.Level = 42
	require.NoError(t, f.UpdateSkill(target.ID, target))

	for _, s := range f.Snapshot().Skills {
		if s.ID == target.ID {
			assert.Equal(t, 42, s.Level)
		}
	}
}

func TestPasswordManagement(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))
	login(t, f)

	assert.True(t, f.ValidateCurrentPassword(auth.DefaultPassword))
	assert.False(t, f.ValidateCurrentPassword("nope"))

	require.ErrorIs(t, f.UpdatePassword("weak"), contracts.ErrValidation)
	require.NoError(t, f.UpdatePassword("Str0ng!Pass"))
	assert.True(t, f.ValidateCurrentPassword("Str0ng!Pass"))
	assert.False(t, f.ValidateCurrentPassword(auth.DefaultPassword))
}

func TestRevokeOtherSessions(t *testing.T) {
	dir := t.TempDir()
	a := newTestFacade(t, filepath.Join(dir, "shared.db"))
	b := newTestFacade(t, filepath.Join(dir, "shared.db"))

	login(t, a)
	login(t, b)
	require.Len(t, b.Sessions(), 2)

	require.NoError(t, b.RevokeOtherSessions())
	sessions := b.Sessions()
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Current)
}

func TestCrossViewConvergenceViaFallbackPoll(t *testing.T) {
	// Two views over the same backing file but with independent buses: the
	// push notification from A can never reach B, so B converges through the
	// fallback poll alone.
	dir := t.TempDir()
	a := newTestFacade(t, filepath.Join(dir, "shared.db"))
	b := newTestFacade(t, filepath.Join(dir, "shared.db"))

	login(t, a)
	added, err := a.AddProject(models.Project{Title: "Cross View"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		for _, p := range b.Snapshot().Projects {
			if p.ID == added.ID {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond,
		"view B must observe the mutation within one fallback-poll interval")
}

func TestLoginFlowEndToEnd(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))
	flow := f.NewLoginFlow()

	ok, err := flow.SubmitMath("not a number")
	require.Error(t, err)
	require.False(t, ok)

	challenge := flow.Challenge()
	ok, err = flow.SubmitMath(strconv.Itoa(challenge.Expected))
	require.NoError(t, err)
	require.True(t, ok)

	// The default questions are installed on first use; answer whichever one
	// was presented.
	seedAnswers := map[string]string{
		"birth":  "Springfield",
		"pet":    "Buddy",
		"school": "Lincoln Elementary",
	}
	for !flow.SubmitSecurity(seedAnswers[flow.Question().ID]) {
	}

	require.NoError(t, flow.SubmitPassword(auth.DefaultPassword))
	assert.Equal(t, auth.StateAuthenticated, flow.State())
	assert.True(t, f.Snapshot().IsAdmin)
	assert.True(t, f.IsAuthenticated())
}

// The expiry timer calls Logout from its own goroutine; fails under the race
// detector if the facade's timer bookkeeping is not synchronized.
func TestSessionExpiryForcesLogout(t *testing.T) {
	bus := storage.NewChangeBus()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "p.db"), bus, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	settings := testSettings()
	settings.SessionTimeout = 20 * time.Millisecond
	f := New(store, bus, settings, zap.NewNop(), DefaultData())
	t.Cleanup(f.Close)

	login(t, f)
	require.Eventually(t, func() bool {
		return !f.IsAuthenticated()
	}, 2*time.Second, 10*time.Millisecond, "the expiry timer forces a logout")
	assert.False(t, f.Snapshot().IsAdmin)
	assert.Empty(t, f.Sessions())
}

func TestListenChannelClosesOnClose(t *testing.T) {
	f := newTestFacade(t, filepath.Join(t.TempDir(), "p.db"))
	ch := f.Listen()

	f.Close()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				// A listener registered after close gets a closed channel
				// immediately, and closing again is a no-op.
				_, ok = <-f.Listen()
				assert.False(t, ok)
				f.Close()
				return
			}
		case <-deadline:
			t.Fatal("listener channel was not closed")
		}
	}
}

func TestRestoreAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	a := newTestFacade(t, filepath.Join(dir, "p.db"))
	login(t, a)

	// Simulate a restart: a second facade over the same file resumes the
	// persisted session without a fresh login.
	b := newTestFacade(t, filepath.Join(dir, "p.db"))
	require.True(t, b.Restore())
	assert.True(t, b.IsAuthenticated())
	assert.True(t, b.Snapshot().IsAdmin)
}
