package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack/internal/model"
)

type PostRepository interface {
	Create(post *model.Post) error
	Feed() ([]*model.FeedEntry, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	query := `INSERT INTO posts (user_id, activity_id, caption, timestamp)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	return r.db.QueryRow(query, post.UserID, post.ActivityID, post.Caption, post.Timestamp).Scan(&post.ID)
}

// Feed returns every post, newest first. Posts sharing a timestamp fall back
// to insertion order, latest first.
func (r *postRepository) Feed() ([]*model.FeedEntry, error) {
	entries := []*model.FeedEntry{}
	query := `SELECT p.id AS post_id, u.username, a.activity_type, a.duration, a.distance, p.caption, p.timestamp
	          FROM posts p
	          JOIN users u ON p.user_id = u.id
	          JOIN activities a ON p.activity_id = a.id
	          ORDER BY p.timestamp DESC, p.id DESC`

	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
