package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
)

type ActivityRepository interface {
	Create(activity *model.Activity) error
	ByID(id int64) (*model.Activity, error)
	Activities(userID int64) ([]*model.Activity, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *model.Activity) error {
	query := `INSERT INTO activities (user_id, activity_type, duration, distance, calories_burned, heart_rate)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	return r.db.QueryRow(query,
		activity.UserID,
		activity.ActivityType,
		activity.DurationMinutes,
		activity.DistanceKm,
		activity.CaloriesBurned,
		activity.HeartRate,
	).Scan(&activity.ID)
}

func (r *activityRepository) ByID(id int64) (*model.Activity, error) {
	activity := &model.Activity{}
	query := `SELECT * FROM activities WHERE id = $1`

	err := r.db.Get(activity, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	return activity, nil
}

// Activities returns the user's activities in the order they were logged.
func (r *activityRepository) Activities(userID int64) ([]*model.Activity, error) {
	activities := []*model.Activity{}
	query := `SELECT * FROM activities WHERE user_id = $1 ORDER BY id ASC`

	err := r.db.Select(&activities, query, userID)
	if err != nil {
		return nil, err
	}

	return activities, nil
}
