package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

type WorkoutPlanRepository interface {
	Create(plan *model.WorkoutPlan) error
	Plans(userID int64) ([]*model.WorkoutPlan, error)
}

type workoutPlanRepository struct {
	db *sqlx.DB
}

func NewWorkoutPlanRepository(db *sqlx.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{db: db}
}

func (r *workoutPlanRepository) Create(plan *model.WorkoutPlan) error {
	query := `INSERT INTO workout_plans (user_id, plan_name, exercises, schedule)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	return r.db.QueryRow(query, plan.UserID, plan.PlanName, plan.Exercises, plan.Schedule).Scan(&plan.ID)
}

func (r *workoutPlanRepository) Plans(userID int64) ([]*model.WorkoutPlan, error) {
	plans := []*model.WorkoutPlan{}
	query := `SELECT * FROM workout_plans WHERE user_id = $1 ORDER BY id ASC`

	err := r.db.Select(&plans, query, userID)
	if err != nil {
		return nil, err
	}

	return plans, nil
}
