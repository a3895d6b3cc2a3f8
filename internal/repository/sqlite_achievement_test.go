package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/fitloop/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementRepo_UnlockOnce(t *testing.T) {
	repo := NewSQLiteAchievementRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.FixedNow
	unlocked, err := repo.Unlock(ctx, "first_workout", first)
	require.NoError(t, err)
	assert.True(t, unlocked)

	unlocked, err = repo.Unlock(ctx, "first_workout", first.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.False(t, unlocked)

	all, err := repo.ListUnlocked(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, first.Equal(all["first_workout"]), "original unlock time kept")
}
