package service

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/testsupport"
)

type services struct {
	accounts   *AccountService
	activities *ActivityService
	goals      *GoalService
	plans      *WorkoutPlanService
	social     *SocialService
	db         *sqlx.DB
}

func newServices(t *testing.T) *services {
	t.Helper()

	db := testsupport.NewSQLite(t)
	users := repository.NewUserRepository(db)
	activities := repository.NewActivityRepository(db)

	return &services{
		accounts:   NewAccountService(users),
		activities: NewActivityService(activities, users),
		goals:      NewGoalService(repository.NewGoalRepository(db), users),
		plans:      NewWorkoutPlanService(repository.NewWorkoutPlanRepository(db), users),
		social:     NewSocialService(repository.NewPostRepository(db), activities),
		db:         db,
	}
}

func (s *services) signUp(t *testing.T, username string) int64 {
	t.Helper()
	id, err := s.accounts.SignUp(SignUpInput{Username: username, Password: "pw"})
	require.NoError(t, err)
	return id
}

func ptr[T any](v T) *T { return &v }
