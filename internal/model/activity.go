package model

type Activity struct {
	ID              int64   `db:"id"`
	UserID          int64   `db:"user_id"`
	ActivityType    string  `db:"activity_type"`
	DurationMinutes int     `db:"duration"`
	DistanceKm      float64 `db:"distance"`
	CaloriesBurned  float64 `db:"calories_burned"`
	HeartRate       *int    `db:"heart_rate"` // Nullable: not every session is measured
}
