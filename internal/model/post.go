package model

import (
	"time"
)

type Post struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	ActivityID int64     `db:"activity_id"`
	Caption    string    `db:"caption"`
	Timestamp  time.Time `db:"timestamp"`
}

// FeedEntry is a post joined with its author and the shared activity.
type FeedEntry struct {
	PostID          int64     `db:"post_id"`
	Username        string    `db:"username"`
	ActivityType    string    `db:"activity_type"`
	DurationMinutes int       `db:"duration"`
	DistanceKm      float64   `db:"distance"`
	Caption         string    `db:"caption"`
	Timestamp       time.Time `db:"timestamp"`
}
