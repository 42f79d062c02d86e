package fixtures

import (
	"context"
	"testing"

	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/models"
	"bab-insa-tournament/packages/core/repositories"
	"bab-insa-tournament/packages/core/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFixtures_GenerateAndClear(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	players := repositories.NewPlayerRepository(db)
	store := repositories.NewBracketRepository(db)
	f := NewFixtures(db, bracket.NewEngine(store, players), zap.NewNop())

	require.NoError(t, f.GenerateTestData(ctx, DefaultPlayers))

	roster, err := players.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, roster, DefaultPlayers)

	names := make(map[string]bool)
	for _, p := range roster {
		assert.NotEmpty(t, p.Name)
		assert.False(t, names[p.Name], "duplicate name %s", p.Name)
		names[p.Name] = true
	}

	matches, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
	for _, m := range matches {
		for _, name := range m.Players() {
			assert.True(t, names[name])
		}
	}

	require.NoError(t, f.ClearAllData(ctx))

	roster, err = players.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, roster)

	var games int64
	require.NoError(t, db.Model(&models.Game{}).Count(&games).Error)
	assert.Zero(t, games)
}
