package model

type Goal struct {
	ID             int64   `db:"id"`
	UserID         int64   `db:"user_id"`
	TargetWeight   float64 `db:"target_weight"`
	TargetDistance float64 `db:"target_distance"`
	TargetCalories float64 `db:"target_calories"`
}
