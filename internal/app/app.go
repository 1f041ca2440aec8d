package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/service"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	AccountService     *service.AccountService
	ActivityService    *service.ActivityService
	GoalService        *service.GoalService
	WorkoutPlanService *service.WorkoutPlanService
	SocialService      *service.SocialService
}

// New opens the store, ensures the schema and wires the services. Any error
// here means the store is unusable and startup must abort.
func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	return NewWithDB(cfg, database), nil
}

// NewWithDB wires services over an already migrated store.
func NewWithDB(cfg *config.Config, database *sqlx.DB) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	activityRepository := repository.NewActivityRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	workoutPlanRepository := repository.NewWorkoutPlanRepository(database)
	postRepository := repository.NewPostRepository(database)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		AccountService:     service.NewAccountService(userRepository),
		ActivityService:    service.NewActivityService(activityRepository, userRepository),
		GoalService:        service.NewGoalService(goalRepository, userRepository),
		WorkoutPlanService: service.NewWorkoutPlanService(workoutPlanRepository, userRepository),
		SocialService:      service.NewSocialService(postRepository, activityRepository),
	}
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
