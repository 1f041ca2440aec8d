package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

// GoalRepository is append-only: goals are a history, never updated in place.
type GoalRepository interface {
	Create(goal *model.Goal) error
	Goals(userID int64) ([]*model.Goal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (user_id, target_weight, target_distance, target_calories)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	return r.db.QueryRow(query,
		goal.UserID,
		goal.TargetWeight,
		goal.TargetDistance,
		goal.TargetCalories,
	).Scan(&goal.ID)
}

func (r *goalRepository) Goals(userID int64) ([]*model.Goal, error) {
	goals := []*model.Goal{}
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY id ASC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}
