package bracket

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"

	"bab-insa-tournament/packages/core/models"
)

// memoryStore is a Store that copies matches in and out, like a database would.
type memoryStore struct {
	mu      sync.Mutex
	matches []models.Match
	failOn  string
}

var errStoreDown = errors.New("store down")

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func copyMatch(m models.Match) models.Match {
	m.Games = slices.Clone(m.Games)
	return m
}

func (s *memoryStore) fail(op string) error {
	if s.failOn == op {
		return errStoreDown
	}
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("clear"); err != nil {
		return err
	}
	s.matches = nil
	return nil
}

func (s *memoryStore) InsertMany(ctx context.Context, matches []models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("insert"); err != nil {
		return err
	}
	for _, m := range matches {
		s.matches = append(s.matches, copyMatch(m))
	}
	return nil
}

func (s *memoryStore) List(ctx context.Context) ([]models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, copyMatch(m))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *memoryStore) FindByNumber(ctx context.Context, matchNumber int) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.MatchNumber == matchNumber {
			found := copyMatch(m)
			return &found, nil
		}
	}
	return nil, ErrMatchNotFound
}

func (s *memoryStore) DeleteByNumber(ctx context.Context, matchNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("delete"); err != nil {
		return err
	}
	s.matches = slices.DeleteFunc(s.matches, func(m models.Match) bool { return m.MatchNumber == matchNumber })
	return nil
}

func (s *memoryStore) UpdateByNumber(ctx context.Context, matchNumber int, unset []string, set []models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("update"); err != nil {
		return err
	}
	for i := range s.matches {
		if s.matches[i].MatchNumber != matchNumber {
			continue
		}
		for _, label := range unset {
			s.matches[i].ClearGame(label)
		}
		for _, g := range set {
			s.matches[i].SetGame(g)
		}
		return nil
	}
	return ErrMatchNotFound
}

type memoryRoster struct {
	mu      sync.Mutex
	players []models.Player
}

func newMemoryRoster(names ...string) *memoryRoster {
	r := &memoryRoster{}
	for i, name := range names {
		r.players = append(r.players, models.Player{ID: uint(i + 1), Name: name})
	}
	return r
}

func (r *memoryRoster) ListAll(ctx context.Context) ([]models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.players), nil
}

func (r *memoryRoster) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = nil
	return nil
}
