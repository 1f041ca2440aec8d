package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/templui/fittrack/internal/app"
	"github.com/templui/fittrack/internal/model"
	"github.com/templui/fittrack/internal/service"
)

// Shell is the interactive menu front end. It only collects typed input,
// calls the services and prints what they return.
type Shell struct {
	app    *app.App
	prompt *prompter
	out    io.Writer
}

func NewShell(a *app.App, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		app:    a,
		prompt: newPrompter(in, out),
		out:    out,
	}
}

// Run loops over the start menu until the user exits or input ends.
func (s *Shell) Run() error {
	for {
		s.println("\n1) Sign Up")
		s.println("2) Log In")
		s.println("3) Exit")

		choice, err := s.prompt.line("Select an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = s.signUp()
		case "2":
			var profile *model.UserProfile
			profile, err = s.logIn()
			if err == nil && profile != nil {
				err = s.mainMenu(profile.ID)
			}
		case "3":
			s.println("Exiting...")
			return nil
		default:
			s.println("Invalid choice. Try again.")
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Shell) mainMenu(userID int64) error {
	for {
		s.println("\n1) Activity Tracking")
		s.println("2) View Activities")
		s.println("3) Workout Plans")
		s.println("4) Goal Setting")
		s.println("5) Social Features")
		s.println("6) Log out or Exit")

		choice, err := s.prompt.line("Select an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.trackActivity(userID)
		case "2":
			err = s.viewActivities(userID)
		case "3":
			err = s.workoutPlansMenu(userID)
		case "4":
			err = s.goalsMenu(userID)
		case "5":
			err = s.socialMenu(userID)
		case "6":
			return nil
		default:
			s.println("Invalid option. Try again.")
		}

		if err != nil {
			return err
		}
	}
}

func (s *Shell) signUp() error {
	var input service.SignUpInput
	var err error

	if input.Username, err = s.prompt.line("Enter username: "); err != nil {
		return err
	}
	if input.Password, err = s.prompt.line("Enter password: "); err != nil {
		return err
	}
	if input.Age, err = s.prompt.optionalInteger("Enter your age: "); err != nil {
		return err
	}
	if input.WeightKg, err = s.prompt.optionalNumber("Enter your weight (kg): "); err != nil {
		return err
	}
	if input.HeightCm, err = s.prompt.optionalNumber("Enter your height (cm): "); err != nil {
		return err
	}
	if input.FitnessGoal, err = s.prompt.optionalText("Enter your fitness goal (e.g., weight loss, muscle gain, endurance): "); err != nil {
		return err
	}

	_, err = s.app.AccountService.SignUp(input)
	if err != nil {
		return s.report(err)
	}

	s.println("Account created successfully!")
	return nil
}

// logIn returns a nil profile when the credentials were rejected.
func (s *Shell) logIn() (*model.UserProfile, error) {
	username, err := s.prompt.line("Enter username: ")
	if err != nil {
		return nil, err
	}
	password, err := s.prompt.line("Enter password: ")
	if err != nil {
		return nil, err
	}

	profile, err := s.app.AccountService.LogIn(username, password)
	if err != nil {
		return nil, s.report(err)
	}

	s.printf("\nLogin successful!\n\n")
	renderProfile(s.out, profile)
	return profile, nil
}

func (s *Shell) trackActivity(userID int64) error {
	activityType, err := s.prompt.line("Enter activity type (running, walking, cycling, etc.): ")
	if err != nil {
		return err
	}
	duration, err := s.prompt.integer("Enter duration (minutes): ")
	if err != nil {
		return err
	}
	distance, err := s.prompt.number("Enter distance covered (km): ")
	if err != nil {
		return err
	}
	heartRate, err := s.prompt.optionalInteger("Enter heart rate (optional, press Enter to skip): ")
	if err != nil {
		return err
	}

	activity, err := s.app.ActivityService.LogActivity(userID, activityType, duration, distance, heartRate)
	if err != nil {
		return s.report(err)
	}

	s.printf("Activity recorded successfully!\n Calories Burned: %.2f\n", activity.CaloriesBurned)
	return nil
}

func (s *Shell) viewActivities(userID int64) error {
	activities, err := s.app.ActivityService.Activities(userID)
	if err != nil {
		return s.report(err)
	}

	if len(activities) == 0 {
		s.println("No activities recorded yet.")
		return nil
	}

	s.println("\nYour Activities:")
	for _, a := range activities {
		renderActivity(s.out, a)
	}
	return nil
}

func (s *Shell) workoutPlansMenu(userID int64) error {
	s.println("\n1) Create Custom Workout Plan")
	s.println("2) View My Workout Plans")
	s.println("3) Get Predefined Workout Plan")

	choice, err := s.prompt.line("Select an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.createPlan(userID)
	case "2":
		return s.viewPlans(userID)
	case "3":
		level, err := s.prompt.line("Enter fitness level (Beginner, Intermediate, Advanced): ")
		if err != nil {
			return err
		}
		plan, err := s.app.WorkoutPlanService.PredefinedPlan(level)
		if err != nil {
			return s.report(err)
		}
		s.println("\nPredefined Workout Plan:")
		s.println(plan)
	default:
		s.println("Invalid choice. Try again.")
	}
	return nil
}

func (s *Shell) createPlan(userID int64) error {
	name, err := s.prompt.line("Enter workout plan name: ")
	if err != nil {
		return err
	}
	exercises, err := s.prompt.line("Enter exercises (comma-separated): ")
	if err != nil {
		return err
	}
	schedule, err := s.prompt.line("Enter workout schedule (e.g., Monday, Wednesday, Friday): ")
	if err != nil {
		return err
	}

	_, err = s.app.WorkoutPlanService.CreatePlan(userID, name, exercises, schedule)
	if err != nil {
		return s.report(err)
	}

	s.println("Workout plan added successfully!")
	return nil
}

func (s *Shell) viewPlans(userID int64) error {
	plans, err := s.app.WorkoutPlanService.Plans(userID)
	if err != nil {
		return s.report(err)
	}

	if len(plans) == 0 {
		s.println("No workout plans found. Create one to get started!")
		return nil
	}

	s.println("\nYour Workout Plans:")
	for _, p := range plans {
		renderPlan(s.out, p)
	}
	return nil
}

func (s *Shell) goalsMenu(userID int64) error {
	s.println("\n1) Set Goals")
	s.println("2) View Goal History")

	choice, err := s.prompt.line("Select an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.setGoals(userID)
	case "2":
		return s.viewGoals(userID)
	default:
		s.println("Invalid choice. Try again.")
	}
	return nil
}

func (s *Shell) setGoals(userID int64) error {
	weight, err := s.prompt.number("Enter target weight (kg): ")
	if err != nil {
		return err
	}
	distance, err := s.prompt.number("Enter target distance to run (km): ")
	if err != nil {
		return err
	}
	calories, err := s.prompt.number("Enter target calories to burn: ")
	if err != nil {
		return err
	}

	_, err = s.app.GoalService.SetGoal(userID, weight, distance, calories)
	if err != nil {
		return s.report(err)
	}

	s.println("Goals set successfully!")
	return nil
}

func (s *Shell) viewGoals(userID int64) error {
	goals, err := s.app.GoalService.Goals(userID)
	if err != nil {
		return s.report(err)
	}

	if len(goals) == 0 {
		s.println("No goals set yet.")
		return nil
	}

	s.println("\nYour Goals:")
	for i, g := range goals {
		renderGoal(s.out, i+1, g)
	}
	return nil
}

func (s *Shell) socialMenu(userID int64) error {
	s.println("\n1) Share activity")
	s.println("2) View shared activities")

	choice, err := s.prompt.line("\nSelect an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.shareActivity(userID)
	case "2":
		return s.viewFeed()
	default:
		s.println("Invalid choice. Try again.")
	}
	return nil
}

func (s *Shell) shareActivity(userID int64) error {
	activities, err := s.app.ActivityService.Activities(userID)
	if err != nil {
		return s.report(err)
	}

	if len(activities) == 0 {
		s.println("No activities to share.")
		return nil
	}

	s.printf("\nSelect an activity to share:\n\n")
	for i, a := range activities {
		s.printf("%d) %s - %d min, %s km\n", i+1, a.ActivityType, a.DurationMinutes, formatFloat(a.DistanceKm))
	}

	choice, err := s.prompt.integer("Enter activity number: ")
	if err != nil {
		return err
	}
	if choice < 1 || choice > len(activities) {
		s.println("Invalid choice.")
		return nil
	}

	caption, err := s.prompt.line("Enter a caption for your post: ")
	if err != nil {
		return err
	}

	_, err = s.app.SocialService.ShareActivity(userID, activities[choice-1].ID, caption)
	if err != nil {
		return s.report(err)
	}

	s.println("Activity shared successfully!")
	return nil
}

func (s *Shell) viewFeed() error {
	feed, err := s.app.SocialService.Feed()
	if err != nil {
		return s.report(err)
	}

	if len(feed) == 0 {
		s.println("No shared activities yet.")
		return nil
	}

	s.println("\nShared Activities:")
	for _, e := range feed {
		renderFeedEntry(s.out, e)
	}
	return nil
}

// report prints expected failures and keeps the session going. Anything
// else is a storage fault: it is logged and the message shown.
func (s *Shell) report(err error) error {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		s.println("Username already exists! Try again.")
	case errors.Is(err, service.ErrInvalidCredentials):
		s.println("Invalid credentials. Try again.")
	case errors.Is(err, service.ErrInvalidLevel):
		s.println("Invalid fitness level.")
	case errors.Is(err, service.ErrActivityNotFound):
		s.println("Activity not found.")
	case errors.Is(err, service.ErrNotOwner):
		s.println("You can only share your own activities.")
	case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrNegativeValue), errors.Is(err, service.ErrNotFinite):
		s.printf("Invalid input: %v\n", err)
	case errors.Is(err, service.ErrUserNotFound):
		s.println("Your account no longer exists. Please log in again.")
	default:
		slog.Error("operation failed", "error", err)
		s.printf("Something went wrong: %v\n", err)
	}
	return nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
