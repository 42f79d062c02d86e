package bracket

import (
	"context"
	"sync"
	"testing"
	"time"

	"bab-insa-tournament/packages/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func rosterPlayers(names ...string) []models.Player {
	players := make([]models.Player, len(names))
	for i, name := range names {
		players[i] = models.Player{ID: uint(i + 1), Name: name}
	}
	return players
}

var eightPlayers = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

func newTestEngine(t *testing.T, names ...string) (*Engine, *memoryStore) {
	t.Helper()
	store := newMemoryStore()
	engine := NewEngine(store, newMemoryRoster(names...), WithSourceFactory(func() Source {
		return NewSeededSource(99)
	}))
	return engine, store
}

func TestEngine_GenerateEightPlayers(t *testing.T) {
	ctx := context.Background()
	engine, store := newTestEngine(t)

	result, err := engine.Generate(ctx, rosterPlayers(eightPlayers...), NewSeededSource(3))
	require.NoError(t, err)

	assert.Equal(t, 8, result.NbPlayers)
	assert.Equal(t, 28, result.NbTeams)
	require.NotEmpty(t, result.Matches)

	numbers := make(map[int]bool)
	for i, m := range result.Matches {
		assert.Equal(t, i+1, m.Position)
		assert.False(t, numbers[m.MatchNumber], "duplicate match number %d", m.MatchNumber)
		numbers[m.MatchNumber] = true
		assertDistinctPlayers(t, m)
	}
	for n := 1; n <= len(result.Matches); n++ {
		assert.True(t, numbers[n], "match numbers must be 1..K, missing %d", n)
	}

	stored, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(result.Matches))
}

func TestEngine_GenerateKeepsNumbersThroughShuffle(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(t)

	// With enough seeds, at least one shuffle must move a match away from the
	// slot its number points at.
	moved := false
	for seed := uint64(0); seed < 20 && !moved; seed++ {
		result, err := engine.Generate(ctx, rosterPlayers(playerNames(16)...), NewSeededSource(seed))
		require.NoError(t, err)
		for _, m := range result.Matches {
			if m.MatchNumber != m.Position {
				moved = true
			}
		}
	}
	assert.True(t, moved)
}

func TestEngine_GenerateIsReproducibleWithSeed(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(t)
	players := rosterPlayers(playerNames(12)...)

	first, err := engine.Generate(ctx, players, NewSeededSource(11))
	require.NoError(t, err)
	second, err := engine.Generate(ctx, players, NewSeededSource(11))
	require.NoError(t, err)

	assert.Equal(t, first.Matches, second.Matches)
}

func TestEngine_GenerateReplacesBracket(t *testing.T) {
	ctx := context.Background()
	engine, store := newTestEngine(t)

	_, err := engine.Generate(ctx, rosterPlayers(playerNames(12)...), nil)
	require.NoError(t, err)
	second, err := engine.Generate(ctx, rosterPlayers(eightPlayers...), nil)
	require.NoError(t, err)

	stored, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(second.Matches))
	for _, m := range stored {
		for _, p := range m.Players() {
			assert.Contains(t, eightPlayers, p)
		}
	}
}

func TestEngine_GenerateDegenerateRosters(t *testing.T) {
	tests := []struct {
		name      string
		players   []string
		wantTeams int
	}{
		{name: "empty roster", players: nil, wantTeams: 0},
		{name: "single player", players: []string{"A"}, wantTeams: 0},
		{name: "three players", players: []string{"A", "B", "C"}, wantTeams: 3},
		{name: "seven players", players: []string{"A", "B", "C", "D", "E", "F", "G"}, wantTeams: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			engine, store := newTestEngine(t)
			require.NoError(t, store.InsertMany(ctx, []models.Match{{MatchNumber: 1, Position: 1}}))

			result, err := engine.Generate(ctx, rosterPlayers(tt.players...), nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTeams, result.NbTeams)
			assert.Empty(t, result.Matches)

			stored, err := store.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, stored, "previous bracket must be cleared")
		})
	}
}

func TestEngine_GenerateIgnoresDuplicateNames(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(t)

	result, err := engine.Generate(ctx, rosterPlayers("A", "B", "A", "C"), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.NbPlayers)
	assert.Equal(t, 3, result.NbTeams)
}

func TestEngine_GenerateFromRoster(t *testing.T) {
	ctx := context.Background()
	engine, store := newTestEngine(t, eightPlayers...)

	result, err := engine.GenerateFromRoster(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.Matches)

	stored, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(result.Matches))
}

func TestEngine_GeneratePropagatesStoreErrors(t *testing.T) {
	for _, op := range []string{"clear", "insert"} {
		t.Run(op, func(t *testing.T) {
			engine, store := newTestEngine(t)
			store.failOn = op

			_, err := engine.Generate(context.Background(), rosterPlayers(eightPlayers...), nil)
			assert.ErrorIs(t, err, errStoreDown)
		})
	}
}

func generateEight(t *testing.T) (*Engine, *memoryStore, models.Match) {
	t.Helper()
	engine, store := newTestEngine(t)
	result, err := engine.Generate(context.Background(), rosterPlayers(eightPlayers...), NewSeededSource(5))
	require.NoError(t, err)
	require.NotEmpty(t, result.Matches)
	return engine, store, result.Matches[0]
}

func TestEngine_RemoveGameScenario(t *testing.T) {
	ctx := context.Background()
	engine, store, match := generateEight(t)
	before, err := store.List(ctx)
	require.NoError(t, err)

	game2, ok := match.Game(models.GameTwo)
	require.True(t, ok)

	res, err := engine.RemoveGame(ctx, match.MatchNumber, models.GameOne)
	require.NoError(t, err)
	assert.True(t, res.Removed)
	assert.False(t, res.DeletedMatch)

	stored, err := store.FindByNumber(ctx, match.MatchNumber)
	require.NoError(t, err)
	_, hasGame1 := stored.Game(models.GameOne)
	assert.False(t, hasGame1)
	remaining, hasGame2 := stored.Game(models.GameTwo)
	require.True(t, hasGame2)
	assert.Equal(t, game2, remaining, "remaining game must be copied through untouched")

	res, err = engine.RemoveGame(ctx, match.MatchNumber, models.GameTwo)
	require.NoError(t, err)
	assert.True(t, res.Removed)
	assert.True(t, res.DeletedMatch)

	_, err = store.FindByNumber(ctx, match.MatchNumber)
	assert.ErrorIs(t, err, ErrMatchNotFound)

	after, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
}

func TestEngine_RemoveGameIsIdempotent(t *testing.T) {
	ctx := context.Background()
	engine, store, match := generateEight(t)

	_, err := engine.RemoveGame(ctx, match.MatchNumber, models.GameTwo)
	require.NoError(t, err)
	once, err := store.List(ctx)
	require.NoError(t, err)

	res, err := engine.RemoveGame(ctx, match.MatchNumber, models.GameTwo)
	require.NoError(t, err)
	assert.False(t, res.Removed)
	assert.False(t, res.DeletedMatch)

	twice, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestEngine_RemoveGameUnknownLabelIsNoop(t *testing.T) {
	ctx := context.Background()
	engine, store, match := generateEight(t)
	before, err := store.List(ctx)
	require.NoError(t, err)

	for _, label := range []string{"", "game 1", "Game 3", "Game1"} {
		res, err := engine.RemoveGame(ctx, match.MatchNumber, label)
		require.NoError(t, err, "label %q", label)
		assert.False(t, res.Removed)
		assert.False(t, res.DeletedMatch)
	}

	after, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEngine_RemoveGameNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.RemoveGame(context.Background(), 999, models.GameOne)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestEngine_RemoveGamePropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()

	engine, store, match := generateEight(t)
	store.failOn = "update"
	_, err := engine.RemoveGame(ctx, match.MatchNumber, models.GameOne)
	assert.ErrorIs(t, err, errStoreDown)

	store.failOn = ""
	_, err = engine.RemoveGame(ctx, match.MatchNumber, models.GameOne)
	require.NoError(t, err)
	store.failOn = "delete"
	_, err = engine.RemoveGame(ctx, match.MatchNumber, models.GameTwo)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestEngine_ConcurrentRemovalsOfSameMatch(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		engine, store, match := generateEight(t)

		var wg sync.WaitGroup
		for _, label := range []string{models.GameOne, models.GameTwo} {
			wg.Add(1)
			go func(label string) {
				defer wg.Done()
				_, err := engine.RemoveGame(ctx, match.MatchNumber, label)
				assert.NoError(t, err)
			}(label)
		}
		wg.Wait()

		_, err := store.FindByNumber(ctx, match.MatchNumber)
		require.ErrorIs(t, err, ErrMatchNotFound, "both removals must land, iteration %d", i)
	}
}

func TestEngine_ConcurrentGenerations(t *testing.T) {
	ctx := context.Background()
	engine, store := newTestEngine(t)
	players := rosterPlayers(playerNames(12)...)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Generate(ctx, players, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := store.List(ctx)
	require.NoError(t, err)

	numbers := make(map[int]bool)
	for _, m := range stored {
		assert.False(t, numbers[m.MatchNumber], "match %d stored twice", m.MatchNumber)
		numbers[m.MatchNumber] = true
	}
	assert.Zero(t, engine.matchLocks.size())
}

func TestEngine_ClearBracketAndRoster(t *testing.T) {
	ctx := context.Background()
	roster := newMemoryRoster(eightPlayers...)
	store := newMemoryStore()
	engine := NewEngine(store, roster)

	_, err := engine.GenerateFromRoster(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, engine.ClearRoster(ctx))
	players, err := roster.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)

	stored, err := engine.Bracket(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, stored, "clearing the roster keeps the bracket")

	require.NoError(t, engine.ClearBracket(ctx))
	stored, err = engine.Bracket(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestEngine_RemoveGameUnknownLabelLogsWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := newMemoryStore()
	engine := NewEngine(store, newMemoryRoster(),
		WithLogger(zap.New(core)),
		WithSourceFactory(func() Source { return NewSeededSource(99) }))

	ctx := context.Background()
	res, err := engine.Generate(ctx, rosterPlayers(eightPlayers...), nil)
	require.NoError(t, err)
	require.NotEmpty(t, res.Matches)
	number := res.Matches[0].MatchNumber

	_, err = engine.RemoveGame(ctx, number, "Game 3")
	require.NoError(t, err)

	entries := logs.FilterMessage("ignoring removal of unknown game").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Game 3", fields["game"])
	assert.EqualValues(t, number, fields["match_number"])
}

// hookStore runs afterFind once, right after the first FindByNumber.
type hookStore struct {
	*memoryStore
	once      sync.Once
	afterFind func()
}

func (s *hookStore) FindByNumber(ctx context.Context, matchNumber int) (*models.Match, error) {
	m, err := s.memoryStore.FindByNumber(ctx, matchNumber)
	s.once.Do(s.afterFind)
	return m, err
}

func TestEngine_GenerateDuringRemoveGameKeepsNewBracketClean(t *testing.T) {
	ctx := context.Background()
	store := &hookStore{memoryStore: newMemoryStore()}
	engine := NewEngine(store, newMemoryRoster())

	_, err := engine.Generate(ctx, rosterPlayers(eightPlayers...), NewSeededSource(5))
	require.NoError(t, err)

	newRoster := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"}
	generated := make(chan error, 1)
	store.afterFind = func() {
		go func() {
			_, err := engine.Generate(ctx, rosterPlayers(newRoster...), NewSeededSource(7))
			generated <- err
		}()
		// Leave the regeneration time to run if nothing holds it back.
		time.Sleep(50 * time.Millisecond)
	}

	_, err = engine.RemoveGame(ctx, 1, models.GameOne)
	require.NoError(t, err)
	require.NoError(t, <-generated)

	allowed := make(map[string]bool)
	for _, name := range newRoster {
		allowed[name] = true
	}

	matches, err := store.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		require.Len(t, m.Games, 2, "match %d", m.MatchNumber)
		players := m.Players()
		seen := make(map[string]bool)
		for _, name := range players {
			assert.True(t, allowed[name], "match %d holds %s from the previous roster", m.MatchNumber, name)
			seen[name] = true
		}
		assert.Len(t, seen, 8, "match %d", m.MatchNumber)
	}
}
