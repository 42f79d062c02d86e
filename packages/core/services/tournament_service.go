package services

import (
	"context"
	"errors"

	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/metrics"
	"bab-insa-tournament/packages/core/models"

	"go.uber.org/zap"
)

// ErrMatchNotFound is returned for match numbers absent from the bracket.
var ErrMatchNotFound = bracket.ErrMatchNotFound

// TournamentService exposes the bracket engine to handlers and the scheduler.
type TournamentService struct {
	engine  *bracket.Engine
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewTournamentService(engine *bracket.Engine, m *metrics.Metrics, logger *zap.Logger) *TournamentService {
	return &TournamentService{
		engine:  engine,
		metrics: m,
		logger:  logger,
	}
}

// GenerateBracket rebuilds the bracket from the current roster. trigger is
// recorded in metrics and logs (manual or schedule).
func (s *TournamentService) GenerateBracket(ctx context.Context, trigger string) (*models.GenerateBracketResponse, error) {
	result, err := s.engine.GenerateFromRoster(ctx, nil)
	if err != nil {
		s.logger.Error("bracket generation failed", zap.String("trigger", trigger), zap.Error(err))
		return nil, err
	}

	s.metrics.ObserveGeneration(trigger, result.NbPlayers, len(result.Matches), len(result.Stranded))

	matches := result.Matches
	if len(matches) == 0 {
		matches = []models.Match{}
		s.logger.Info("not enough players for a match",
			zap.String("trigger", trigger),
			zap.Int("players", result.NbPlayers))
	}

	return &models.GenerateBracketResponse{
		Matches:       matches,
		NbPlayers:     result.NbPlayers,
		NbTeams:       result.NbTeams,
		NbMatches:     len(matches),
		StrandedTeams: len(result.Stranded),
	}, nil
}

func (s *TournamentService) GetBracket(ctx context.Context) ([]models.Match, error) {
	matches, err := s.engine.Bracket(ctx)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}

func (s *TournamentService) GetMatch(ctx context.Context, matchNumber int) (*models.Match, error) {
	return s.engine.Match(ctx, matchNumber)
}

func (s *TournamentService) RemoveGame(ctx context.Context, matchNumber int, label string) (*models.RemoveGameResponse, error) {
	result, err := s.engine.RemoveGame(ctx, matchNumber, label)
	if err != nil {
		if errors.Is(err, bracket.ErrMatchNotFound) {
			s.metrics.ObserveRemoval(metrics.OutcomeNotFound, false)
		} else {
			s.metrics.ObserveRemoval(metrics.OutcomeError, false)
			s.logger.Error("game removal failed",
				zap.Int("match_number", matchNumber),
				zap.String("game", label),
				zap.Error(err))
		}
		return nil, err
	}

	outcome := metrics.OutcomeNoop
	if result.Removed {
		outcome = metrics.OutcomeRemoved
	}
	s.metrics.ObserveRemoval(outcome, result.DeletedMatch)

	if result.DeletedMatch {
		s.logger.Info("match completed", zap.Int("match_number", matchNumber))
	}

	return &models.RemoveGameResponse{
		MatchNumber:  result.MatchNumber,
		Game:         result.Label,
		Removed:      result.Removed,
		DeletedMatch: result.DeletedMatch,
	}, nil
}

func (s *TournamentService) ClearBracket(ctx context.Context) error {
	if err := s.engine.ClearBracket(ctx); err != nil {
		return err
	}
	s.metrics.ObserveClear()
	s.logger.Info("bracket cleared")
	return nil
}
