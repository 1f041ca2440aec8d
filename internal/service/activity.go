package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

type ActivityService struct {
	activityRepository repository.ActivityRepository
	userRepository     repository.UserRepository
}

func NewActivityService(
	activityRepository repository.ActivityRepository,
	userRepository repository.UserRepository,
) *ActivityService {
	return &ActivityService{
		activityRepository: activityRepository,
		userRepository:     userRepository,
	}
}

// LogActivity records an activity with its calorie estimate. A nil heartRate
// is stored as NULL.
func (s *ActivityService) LogActivity(userID int64, activityType string, durationMinutes int, distanceKm float64, heartRate *int) (*model.Activity, error) {
	err := errors.Join(
		validation.NonNegative("duration", durationMinutes),
		validation.NonNegative("distance", distanceKm),
		validation.NonNegativeOptional("heart rate", heartRate),
	)
	if err != nil {
		return nil, err
	}

	_, err = requireUser(s.userRepository, userID)
	if err != nil {
		return nil, err
	}

	calories, err := EstimateCalories(activityType, durationMinutes)
	if err != nil {
		return nil, err
	}

	activity := &model.Activity{
		UserID:          userID,
		ActivityType:    activityType,
		DurationMinutes: durationMinutes,
		DistanceKm:      distanceKm,
		CaloriesBurned:  calories,
		HeartRate:       heartRate,
	}

	err = s.activityRepository.Create(activity)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	slog.Info("activity logged", "user_id", userID, "activity_id", activity.ID, "calories", calories)
	return activity, nil
}

// Activities lists the user's activities oldest first.
func (s *ActivityService) Activities(userID int64) ([]*model.Activity, error) {
	return s.activityRepository.Activities(userID)
}
