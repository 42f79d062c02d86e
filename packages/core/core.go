package core

import (
	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/cron"
	"bab-insa-tournament/packages/core/handlers"
	"bab-insa-tournament/packages/core/metrics"
	"bab-insa-tournament/packages/core/repositories"
	"bab-insa-tournament/packages/core/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	// BracketCron schedules automatic regeneration. Empty disables it.
	BracketCron string
}

type Module struct {
	Engine            *bracket.Engine
	PlayerHandler     *handlers.PlayerHandler
	PlayerService     *services.PlayerService
	TournamentHandler *handlers.TournamentHandler
	TournamentService *services.TournamentService
	StatsHandler      *handlers.StatsHandler
	StatsService      *services.StatsService
	Scheduler         *cron.Scheduler
	logger            *zap.Logger
}

func NewModule(db *gorm.DB, m *metrics.Metrics, logger *zap.Logger, opts Options) *Module {
	engine := bracket.NewEngine(
		repositories.NewBracketRepository(db),
		repositories.NewPlayerRepository(db),
		bracket.WithLogger(logger.Named("bracket")),
	)

	playerService := services.NewPlayerService(db, engine, logger.Named("players"))
	playerHandler := handlers.NewPlayerHandler(playerService)

	tournamentService := services.NewTournamentService(engine, m, logger.Named("tournament"))
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(tournamentService, opts.BracketCron, logger.Named("scheduler"))

	return &Module{
		Engine:            engine,
		PlayerHandler:     playerHandler,
		PlayerService:     playerService,
		TournamentHandler: tournamentHandler,
		TournamentService: tournamentService,
		StatsHandler:      statsHandler,
		StatsService:      statsService,
		Scheduler:         scheduler,
		logger:            logger,
	}
}

// SetupRoutes mounts the API under /api. adminOnly guards the routes that
// rebuild or wipe data.
func (m *Module) SetupRoutes(r *gin.Engine, adminOnly ...gin.HandlerFunc) {
	api := r.Group("/api")

	players := api.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetAllPlayers)
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.PUT("/:id/update", m.PlayerHandler.UpdatePlayerScore)
	}
	players.Group("", adminOnly...).DELETE("", m.PlayerHandler.ClearRoster)

	tournament := api.Group("/tournament")
	{
		tournament.GET("", m.TournamentHandler.GetBracket)
		tournament.GET("/matches/:matchNumber", m.TournamentHandler.GetMatch)
		tournament.PATCH("/matches/:matchNumber/remove-game", m.TournamentHandler.RemoveGame)
	}

	admin := tournament.Group("", adminOnly...)
	{
		admin.POST("/generate", m.TournamentHandler.GenerateBracket)
		admin.DELETE("", m.TournamentHandler.ClearBracket)
	}

	api.GET("/stats", m.StatsHandler.GetStats)
}

func (m *Module) StartScheduler() error {
	m.logger.Info("starting core module scheduler")
	return m.Scheduler.Start()
}

func (m *Module) StopScheduler() {
	m.logger.Info("stopping core module scheduler")
	m.Scheduler.Stop()
}
