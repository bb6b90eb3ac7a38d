package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

func newGamificationService(t *testing.T) *GamificationService {
	t.Helper()
	db := database.Open()
	require.NoError(t, database.Seed(db))
	return NewGamificationService(repository.NewUserRepository(db), repository.NewAchievementRepository(db))
}

func TestAddPointsAccumulates(t *testing.T) {
	s := newGamificationService(t)

	total, err := s.AddPoints("u1", 50)
	require.NoError(t, err)
	assert.Equal(t, 1300, total)

	// Negative deltas are allowed; the ledger is uncapped.
	total, err = s.AddPoints("u1", -100)
	require.NoError(t, err)
	assert.Equal(t, 1200, total)
}

func TestAddPointsUnknownUser(t *testing.T) {
	s := newGamificationService(t)

	_, err := s.AddPoints("nope", 10)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestBadgesResolveInCatalogOrder(t *testing.T) {
	s := newGamificationService(t)

	badges, err := s.Badges("u1")
	require.NoError(t, err)
	require.Len(t, badges, 2)
	assert.Equal(t, "Quick Learner", badges[0].Name)
	assert.Equal(t, "7 Day Streak", badges[1].Name)
}

func TestBadgesSkipUnknownIDs(t *testing.T) {
	s := newGamificationService(t)

	// u3 carries "admin-access", which is not in the catalog.
	badges, err := s.Badges("u3")
	require.NoError(t, err)
	assert.Empty(t, badges)
}

func TestLeaderboardOrdering(t *testing.T) {
	s := newGamificationService(t)

	entries, err := s.Leaderboard(10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, 1250, entries[0].Points)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Points, entries[i].Points)
		assert.Equal(t, i+1, entries[i].Rank)
	}
}

func TestLeaderboardLimit(t *testing.T) {
	s := newGamificationService(t)

	entries, err := s.Leaderboard(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
