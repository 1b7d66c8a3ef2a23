package repository

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-core/pkg/contracts"
	"portfolio-core/pkg/models"
	"portfolio-core/pkg/storage"
)

func newTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "repo.db"), nil, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedSkills() []models.Skill {
	return []models.Skill{
		{RecordID: models.RecordID{ID: "s1"}, Name: "Go", Category: "Backend", Level: 90},
		{RecordID: models.RecordID{ID: "s2"}, Name: "SQL", Category: "Backend", Level: 80},
	}
}

func newSkillRepo(store contracts.Store, authorized *bool) *Repository[models.Skill] {
	return New(store, func() bool { return *authorized }, zap.NewNop(), "portfolio_skills", "skill", seedSkills())
}

func TestGetAllSeedsOnFirstUse(t *testing.T) {
	store := newTestStore(t)
	authorized := false
	repo := newSkillRepo(store, &authorized)

	items := repo.GetAll()
	require.Len(t, items, 2)
	assert.Equal(t, "Go", items[0].Name)

	// The seed is persisted, so a second repository over the same store
	// observes the same records without its own seed.
	other := New[models.Skill](store, func() bool { return false }, zap.NewNop(), "portfolio_skills", "skill", nil)
	assert.Len(t, other.GetAll(), 2)
}

func TestAddRequiresAuthorization(t *testing.T) {
	store := newTestStore(t)
	authorized := true
	repo := newSkillRepo(store, &authorized)
	repo.GetAll() // persist the seed

	before, ok, err := store.Get("portfolio_skills")
	require.NoError(t, err)
	require.True(t, ok)

	authorized = false
	_, err = repo.Add(models.Skill{Name: "Rust", Category: "Backend"})
	require.ErrorIs(t, err, contracts.ErrUnauthorized)

	after, ok, err := store.Get("portfolio_skills")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, after, "unauthorized add must leave the collection byte-for-byte unchanged")
}

func TestAddAssignsPrefixedUniqueID(t *testing.T) {
	store := newTestStore(t)
	authorized := true
	repo := newSkillRepo(store, &authorized)

	first, err := repo.Add(models.Skill{Name: "Rust", Category: "Backend"})
	require.NoError(t, err)
	second, err := repo.Add(models.Skill{Name: "Docker", Category: "DevOps"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.True(t, strings.HasPrefix(first.ID, "skill_"))
	assert.NotEqual(t, first.ID, second.ID)

	items := repo.GetAll()
	require.Len(t, items, 4)
	// Insertion order as stored.
	assert.Equal(t, first.ID, items[2].ID)
	assert.Equal(t, second.ID, items[3].ID)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	store := newTestStore(t)
	authorized := true
	repo := newSkillRepo(store, &authorized)
	repo.GetAll()

	before, _, err := store.Get("portfolio_skills")
	require.NoError(t, err)

	require.NoError(t, repo.Update("nope", models.Skill{Name: "Changed"}))

	after, _, err := store.Get("portfolio_skills")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateReplacesRecordKeepingID(t *testing.T) {
	store := newTestStore(t)
	authorized := true
	repo := newSkillRepo(store, &authorized)

	require.NoError(t, repo.Update("s1", models.Skill{Name: "Golang", Category: "Backend", Level: 95}))

	items := repo.GetAll()
	assert.Equal(t, "s1", items[0].ID)
	assert.Equal(t, "Golang", items[0].Name)
	assert.Equal(t, 95, items[0].Level)
}

func TestDeleteRemovesRecord(t *testing.T) {
	store := newTestStore(t)
	authorized := true
	repo := newSkillRepo(store, &authorized)

	require.NoError(t, repo.Delete("s1"))
	for _, item := range repo.GetAll() {
		assert.NotEqual(t, "s1", item.ID)
	}

	// Absent id is a no-op, not an error.
	require.NoError(t, repo.Delete("s1"))
}

func TestSingletonGate(t *testing.T) {
	store := newTestStore(t)
	authorized := false
	seed := models.PersonalInfo{Name: "Seed Person"}
	single := NewSingleton(store, func() bool { return authorized }, zap.NewNop(), "portfolio_personal_info", seed)

	assert.Equal(t, "Seed Person", single.Get().Name)

	err := single.Set(models.PersonalInfo{Name: "Changed"})
	require.ErrorIs(t, err, contracts.ErrUnauthorized)
	assert.Equal(t, "Seed Person", single.Get().Name)

	authorized = true
	require.NoError(t, single.Set(models.PersonalInfo{Name: "Changed"}))
	assert.Equal(t, "Changed", single.Get().Name)
}
