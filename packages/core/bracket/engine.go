package bracket

import (
	"context"
	"fmt"
	"sync"

	"bab-insa-tournament/packages/core/models"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Engine generates the bracket and applies game removals to it. It owns the
// locks that keep concurrent callers from interleaving their store writes.
type Engine struct {
	store     Store
	roster    Roster
	logger    *zap.Logger
	newSource func() Source

	// generateMu is held exclusively while the bracket is replaced or cleared
	// and shared by game removals.
	generateMu sync.RWMutex
	matchLocks *keyedMutex
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSourceFactory replaces the randomness used when Generate is called
// without an explicit source.
func WithSourceFactory(fn func() Source) Option {
	return func(e *Engine) {
		e.newSource = fn
	}
}

func NewEngine(store Store, roster Roster, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		roster:     roster,
		logger:     zap.NewNop(),
		newSource:  NewSource,
		matchLocks: newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result describes one generation.
type Result struct {
	// Matches in display order.
	Matches   []models.Match
	NbPlayers int
	NbTeams   int
	Stranded  []models.Team
}

type RemoveGameResult struct {
	MatchNumber int
	Label       string
	// Removed is false when the label is unknown or the game was already gone.
	Removed      bool
	DeletedMatch bool
}

// Generate replaces the stored bracket with one built from players. A nil src
// uses the engine's source factory. Fewer than eight usable players produce
// an empty bracket, which is not an error.
func (e *Engine) Generate(ctx context.Context, players []models.Player, src Source) (*Result, error) {
	e.generateMu.Lock()
	defer e.generateMu.Unlock()

	return e.generate(ctx, players, src)
}

// GenerateFromRoster reads the roster and generates from it under the same
// lock, so a concurrent roster clear cannot slip between read and write.
func (e *Engine) GenerateFromRoster(ctx context.Context, src Source) (*Result, error) {
	e.generateMu.Lock()
	defer e.generateMu.Unlock()

	players, err := e.roster.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	return e.generate(ctx, players, src)
}

func (e *Engine) generate(ctx context.Context, players []models.Player, src Source) (*Result, error) {
	if src == nil {
		src = e.newSource()
	}

	names := lo.Uniq(models.PlayerNames(players))

	pool := BuildTeamPool(names)
	nbTeams := len(pool)
	Shuffle(pool, src)

	assembly := AssembleMatches(pool, len(names)-1)
	matches := assembly.Matches
	Shuffle(matches, src)
	for i := range matches {
		matches[i].Position = i + 1
	}

	if err := e.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear bracket: %w", err)
	}
	if len(matches) > 0 {
		if err := e.store.InsertMany(ctx, matches); err != nil {
			return nil, fmt.Errorf("insert bracket: %w", err)
		}
	}

	e.logger.Info("bracket generated",
		zap.Int("players", len(names)),
		zap.Int("teams", nbTeams),
		zap.Int("matches", len(matches)),
		zap.Int("stranded_teams", len(assembly.Stranded)),
		zap.Int("unused_teams", len(assembly.Remaining)))

	if len(assembly.Stranded) > 0 {
		e.logger.Info("discarded partial match",
			zap.Strings("teams", lo.Map(assembly.Stranded, func(t models.Team, _ int) string { return t.String() })))
	}

	return &Result{
		Matches:   matches,
		NbPlayers: len(names),
		NbTeams:   nbTeams,
		Stranded:  assembly.Stranded,
	}, nil
}

// RemoveGame clears one game of a match and deletes the match once both of
// its games are gone. Labels other than "Game 1" and "Game 2" leave the match
// untouched and still succeed. A generation waits for the removal to finish
// and the other way round.
func (e *Engine) RemoveGame(ctx context.Context, matchNumber int, label string) (RemoveGameResult, error) {
	e.generateMu.RLock()
	defer e.generateMu.RUnlock()

	unlock := e.matchLocks.Lock(matchNumber)
	defer unlock()

	result := RemoveGameResult{MatchNumber: matchNumber, Label: label}

	match, err := e.store.FindByNumber(ctx, matchNumber)
	if err != nil {
		return result, err
	}

	if !models.IsGameLabel(label) {
		e.logger.Warn("ignoring removal of unknown game",
			zap.Int("match_number", matchNumber),
			zap.String("game", label))
		return result, nil
	}

	result.Removed = match.ClearGame(label)

	if match.IsEmpty() {
		if err := e.store.DeleteByNumber(ctx, matchNumber); err != nil {
			return result, fmt.Errorf("delete match %d: %w", matchNumber, err)
		}
		result.DeletedMatch = true
		return result, nil
	}

	if err := e.store.UpdateByNumber(ctx, matchNumber, []string{label}, match.Games); err != nil {
		return result, fmt.Errorf("update match %d: %w", matchNumber, err)
	}

	return result, nil
}

// ClearBracket deletes every match. It waits for a running generation.
func (e *Engine) ClearBracket(ctx context.Context) error {
	e.generateMu.Lock()
	defer e.generateMu.Unlock()

	return e.store.Clear(ctx)
}

// ClearRoster deletes every player. The stored bracket is left as it is.
func (e *Engine) ClearRoster(ctx context.Context) error {
	e.generateMu.Lock()
	defer e.generateMu.Unlock()

	return e.roster.DeleteAll(ctx)
}

// Bracket returns the stored matches in display order.
func (e *Engine) Bracket(ctx context.Context) ([]models.Match, error) {
	return e.store.List(ctx)
}

func (e *Engine) Match(ctx context.Context, matchNumber int) (*models.Match, error) {
	return e.store.FindByNumber(ctx, matchNumber)
}
