package model

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type WorkoutPlan struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	PlanName  string `db:"plan_name"`
	Exercises string `db:"exercises"` // Free-form, comma-separated
	Schedule  string `db:"schedule"`  // Free-form day list
}
