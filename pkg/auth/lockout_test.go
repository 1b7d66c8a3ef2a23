package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockoutEngagesAtThreshold(t *testing.T) {
	g := NewLockout(newTestStore(t), zap.NewNop(), 0, 0)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return base }

	for i := 0; i < maxLoginAttempts-1; i++ {
		st := g.RecordFailure()
		assert.Nil(t, st.LockedUntil)
		assert.False(t, g.IsLocked())
	}

	st := g.RecordFailure()
	require.NotNil(t, st.LockedUntil)
	assert.Equal(t, base.Add(lockoutDuration), *st.LockedUntil,
		"unlock time is exactly 15 minutes after the fifth failure")
	assert.True(t, g.IsLocked())
	assert.Equal(t, lockoutDuration, g.Remaining())
}

func TestLockoutSelfClearsAfterExpiry(t *testing.T) {
	g := NewLockout(newTestStore(t), zap.NewNop(), 0, 0)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	g.now = func() time.Time { return now }

	for i := 0; i < maxLoginAttempts; i++ {
		g.RecordFailure()
	}
	require.True(t, g.IsLocked())

	now = base.Add(lockoutDuration + time.Second)
	assert.False(t, g.IsLocked())

	// The check cleared the persisted state as a side effect.
	st := g.State()
	assert.Zero(t, st.ConsecutiveFailures)
	assert.Nil(t, st.LockedUntil)
}

func TestLockoutSurvivesReload(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	g := NewLockout(store, zap.NewNop(), 0, 0)
	g.now = func() time.Time { return base }
	for i := 0; i < maxLoginAttempts; i++ {
		g.RecordFailure()
	}

	// A fresh guard over the same store sees the lockout.
	reloaded := NewLockout(store, zap.NewNop(), 0, 0)
	reloaded.now = func() time.Time { return base.Add(time.Minute) }
	assert.True(t, reloaded.IsLocked())
}

func TestRecordSuccessClearsState(t *testing.T) {
	g := NewLockout(newTestStore(t), zap.NewNop(), 0, 0)
	g.RecordFailure()
	g.RecordFailure()

	g.RecordSuccess()
	st := g.State()
	assert.Zero(t, st.ConsecutiveFailures)
	assert.Nil(t, st.LockedUntil)
}
