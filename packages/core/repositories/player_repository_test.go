package repositories

import (
	"context"
	"testing"
	"time"

	"bab-insa-tournament/packages/core/models"
	"bab-insa-tournament/packages/core/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_ListAllInRegistrationOrder(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPlayerRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	players := []models.Player{
		{Name: "late", CreatedAt: base.Add(time.Hour)},
		{Name: "early", CreatedAt: base},
		{Name: "tie", CreatedAt: base.Add(time.Hour)},
	}
	for i := range players {
		require.NoError(t, db.Create(&players[i]).Error)
	}

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"early", "late", "tie"}, models.PlayerNames(got))
}

func TestPlayerRepository_DeleteAll(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPlayerRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Player{Name: "A"}).Error)
	require.NoError(t, db.Create(&models.Player{Name: "B"}).Error)

	require.NoError(t, repo.DeleteAll(ctx))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting an empty roster is fine.
	require.NoError(t, repo.DeleteAll(ctx))
}
