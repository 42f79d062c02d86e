package cron

import (
	"context"
	"time"

	"bab-insa-tournament/packages/core/metrics"
	"bab-insa-tournament/packages/core/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// BracketGenerator rebuilds the bracket from the current roster.
type BracketGenerator interface {
	GenerateBracket(ctx context.Context, trigger string) (*models.GenerateBracketResponse, error)
}

const jobTimeout = 2 * time.Minute

type Scheduler struct {
	cron      *cron.Cron
	generator BracketGenerator
	spec      string
	logger    *zap.Logger
}

// NewScheduler builds a scheduler that regenerates the bracket on spec, a
// cron expression with a leading seconds field. An empty spec schedules nothing.
func NewScheduler(generator BracketGenerator, spec string, logger *zap.Logger) *Scheduler {
	cronLogger := zapCronLogger{logger: logger.Named("cron")}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{
		cron:      c,
		generator: generator,
		spec:      spec,
		logger:    logger,
	}
}

// Start registers the regeneration job and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.logger.Info("scheduled bracket generation disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.runGeneration); err != nil {
		s.logger.Error("error scheduling bracket generation", zap.String("spec", s.spec), zap.Error(err))
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started", zap.String("spec", s.spec))

	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("cron scheduler stopped")
}

func (s *Scheduler) runGeneration() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.logger.Info("running scheduled bracket generation")

	result, err := s.generator.GenerateBracket(ctx, metrics.TriggerSchedule)
	if err != nil {
		s.logger.Error("scheduled bracket generation failed", zap.Error(err))
		return
	}

	s.logger.Info("scheduled bracket generation completed",
		zap.Int("players", result.NbPlayers),
		zap.Int("matches", result.NbMatches),
		zap.Int("stranded_teams", result.StrandedTeams))
}

// RunNow triggers the regeneration job synchronously.
func (s *Scheduler) RunNow() {
	s.logger.Info("manually triggering bracket generation job")
	s.runGeneration()
}

// Entries reports the next run of each scheduled job.
func (s *Scheduler) Entries() []time.Time {
	var next []time.Time
	for _, e := range s.cron.Entries() {
		next = append(next, e.Next)
	}
	return next
}

type zapCronLogger struct {
	logger *zap.Logger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, zap.Any("details", keysAndValues))
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, zap.Error(err), zap.Any("details", keysAndValues))
}
