package app

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/wirdtrack/wirdtrack/internal/config"
	"github.com/wirdtrack/wirdtrack/internal/event_bus"
	"github.com/wirdtrack/wirdtrack/internal/utils"
	"github.com/wirdtrack/wirdtrack/pkg/assignment"
	"github.com/wirdtrack/wirdtrack/pkg/overview"
	"github.com/wirdtrack/wirdtrack/pkg/progress"
	"github.com/wirdtrack/wirdtrack/pkg/quran"
	"github.com/wirdtrack/wirdtrack/pkg/stats"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Catalog  *quran.Catalog

	UserService user.Service
	UserHandler *user.Handler

	AssignmentRepo    assignment.Repository
	AssignmentService assignment.Service
	AssignmentHandler *assignment.Handler

	ProgressRepo    progress.Repository
	ProgressService progress.Service
	ProgressHandler *progress.Handler

	StatsService     stats.Service
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	StatsHandler     *stats.Handler

	OverviewService overview.Service
	OverviewHandler *overview.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Catalog = quran.DefaultCatalog()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	bounds := assignment.RepetitionBounds{
		Min: cfg.Wird.MinRepetitions,
		Max: cfg.Wird.MaxRepetitions,
	}
	deps.AssignmentRepo = assignment.NewRepository(db)
	deps.AssignmentService = assignment.NewService(deps.AssignmentRepo, deps.Catalog, bounds, deps.EventBus)
	gridWeekStart := weekdayOrDefault(cfg.Calendar.GridWeekStartDay, time.Sunday)
	deps.AssignmentHandler = assignment.NewHandler(deps.AssignmentService, gridWeekStart)

	deps.ProgressRepo = progress.NewRepository(db)
	deps.ProgressService = progress.NewService(deps.ProgressRepo, deps.EventBus)
	deps.ProgressHandler = progress.NewHandler(deps.ProgressService, deps.UserService)

	statsWeekStart := weekdayOrDefault(cfg.Stats.WeekStartDay, time.Saturday)
	deps.StatsService = stats.NewService(deps.ProgressService, statsWeekStart)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.StatsHandler = stats.NewHandler(deps.StatsService, deps.UserService, deps.CsvStatsRenderer)

	deps.OverviewService = overview.NewService(deps.AssignmentService, deps.ProgressRepo, deps.EventBus)
	deps.OverviewHandler = overview.NewHandler(deps.OverviewService, deps.UserService)

	return deps
}

// weekdayOrDefault parses the configured week start day, falling back to the
// given default so a misspelled config value cannot shift rollup or grid
// boundaries to an unintended weekday.
func weekdayOrDefault(name string, fallback time.Weekday) time.Weekday {
	day, err := config.ParseWeekday(name)
	if err != nil {
		log.Warnf("invalid week start day %q, using %s", name, fallback)
		return fallback
	}
	return day
}
