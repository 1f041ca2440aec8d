package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

// SignUpInput carries the fields collected at registration. Profile fields
// are optional and stored as NULL when nil.
type SignUpInput struct {
	Username    string
	Password    string
	Age         *int
	WeightKg    *float64
	HeightCm    *float64
	FitnessGoal *string
}

type AccountService struct {
	userRepository repository.UserRepository
}

func NewAccountService(userRepository repository.UserRepository) *AccountService {
	return &AccountService{userRepository: userRepository}
}

func (s *AccountService) SignUp(input SignUpInput) (int64, error) {
	err := validation.ValidateUsername(input.Username)
	if err != nil {
		return 0, err
	}

	err = errors.Join(
		validation.NonNegativeOptional("age", input.Age),
		validation.NonNegativeOptional("weight", input.WeightKg),
		validation.NonNegativeOptional("height", input.HeightCm),
	)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		Username:    input.Username,
		Password:    input.Password,
		Age:         input.Age,
		WeightKg:    input.WeightKg,
		HeightCm:    input.HeightCm,
		FitnessGoal: input.FitnessGoal,
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, fmt.Errorf("sign up %q: %w", input.Username, ErrDuplicateUsername)
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user signed up", "user_id", user.ID)
	return user.ID, nil
}

// LogIn matches username and password exactly. The returned profile's ID is
// the identity used for every later call in the session.
func (s *AccountService) LogIn(username, password string) (*model.UserProfile, error) {
	user, err := s.userRepository.ByCredentials(username, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID)
	return user.Profile(), nil
}

func (s *AccountService) Profile(userID int64) (*model.UserProfile, error) {
	user, err := requireUser(s.userRepository, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

func requireUser(users repository.UserRepository, userID int64) (*model.User, error) {
	user, err := users.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
