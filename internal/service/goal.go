package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

// GoalService keeps goals as an append-only history. Setting a goal never
// replaces an earlier one.
type GoalService struct {
	repo           repository.GoalRepository
	userRepository repository.UserRepository
}

func NewGoalService(repo repository.GoalRepository, userRepository repository.UserRepository) *GoalService {
	return &GoalService{
		repo:           repo,
		userRepository: userRepository,
	}
}

func (s *GoalService) SetGoal(userID int64, targetWeight, targetDistance, targetCalories float64) (int64, error) {
	err := errors.Join(
		validation.Finite("target weight", targetWeight),
		validation.Finite("target distance", targetDistance),
		validation.Finite("target calories", targetCalories),
	)
	if err != nil {
		return 0, err
	}

	_, err = requireUser(s.userRepository, userID)
	if err != nil {
		return 0, err
	}

	goal := &model.Goal{
		UserID:         userID,
		TargetWeight:   targetWeight,
		TargetDistance: targetDistance,
		TargetCalories: targetCalories,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return 0, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("goal set", "user_id", userID, "goal_id", goal.ID)
	return goal.ID, nil
}

func (s *GoalService) Goals(userID int64) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}
