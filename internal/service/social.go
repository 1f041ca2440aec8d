package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
)

type SocialService struct {
	postRepository     repository.PostRepository
	activityRepository repository.ActivityRepository
	now                func() time.Time
}

func NewSocialService(
	postRepository repository.PostRepository,
	activityRepository repository.ActivityRepository,
) *SocialService {
	return &SocialService{
		postRepository:     postRepository,
		activityRepository: activityRepository,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// ShareActivity publishes one of the user's own activities to the feed.
// Activities are immutable, so the ownership check cannot go stale before
// the insert.
func (s *SocialService) ShareActivity(userID, activityID int64, caption string) (int64, error) {
	activity, err := s.activityRepository.ByID(activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return 0, fmt.Errorf("activity %d: %w", activityID, ErrActivityNotFound)
		}
		return 0, fmt.Errorf("failed to get activity: %w", err)
	}

	if activity.UserID != userID {
		slog.Warn("share rejected, activity not owned", "user_id", userID, "activity_id", activityID)
		return 0, fmt.Errorf("activity %d: %w", activityID, ErrNotOwner)
	}

	post := &model.Post{
		UserID:     userID,
		ActivityID: activityID,
		Caption:    caption,
		Timestamp:  s.now(),
	}

	err = s.postRepository.Create(post)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	slog.Info("activity shared", "user_id", userID, "activity_id", activityID, "post_id", post.ID)
	return post.ID, nil
}

// Feed returns every user's posts, newest first.
func (s *SocialService) Feed() ([]*model.FeedEntry, error) {
	return s.postRepository.Feed()
}
