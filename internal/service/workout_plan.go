package service

import (
	"fmt"
	"log/slog"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"golang.org/x/text/cases"
)

// predefinedPlans is a closed set; levels outside it are rejected.
var predefinedPlans = map[string]string{
	model.LevelBeginner:     "Walking, Bodyweight Squats, Push-ups, Yoga",
	model.LevelIntermediate: "Running, Dumbbell Exercises, Planks, Jump Rope",
	model.LevelAdvanced:     "HIIT, Weightlifting, Sprinting, Deadlifts",
}

type WorkoutPlanService struct {
	repo           repository.WorkoutPlanRepository
	userRepository repository.UserRepository
}

func NewWorkoutPlanService(repo repository.WorkoutPlanRepository, userRepository repository.UserRepository) *WorkoutPlanService {
	return &WorkoutPlanService{
		repo:           repo,
		userRepository: userRepository,
	}
}

// CreatePlan stores name, exercises and schedule verbatim.
func (s *WorkoutPlanService) CreatePlan(userID int64, planName, exercises, schedule string) (int64, error) {
	_, err := requireUser(s.userRepository, userID)
	if err != nil {
		return 0, err
	}

	plan := &model.WorkoutPlan{
		UserID:    userID,
		PlanName:  planName,
		Exercises: exercises,
		Schedule:  schedule,
	}

	err = s.repo.Create(plan)
	if err != nil {
		return 0, fmt.Errorf("failed to create workout plan: %w", err)
	}

	slog.Info("workout plan created", "user_id", userID, "plan_id", plan.ID)
	return plan.ID, nil
}

func (s *WorkoutPlanService) Plans(userID int64) ([]*model.WorkoutPlan, error) {
	return s.repo.Plans(userID)
}

// PredefinedPlan returns the canned exercise list for a level, matched
// case-insensitively.
func (s *WorkoutPlanService) PredefinedPlan(level string) (string, error) {
	plan, ok := predefinedPlans[cases.Fold().String(level)]
	if !ok {
		return "", fmt.Errorf("level %q: %w", level, ErrInvalidLevel)
	}
	return plan, nil
}

func (s *WorkoutPlanService) PredefinedLevels() []string {
	return []string{model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced}
}
