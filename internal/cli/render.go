package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/templui/fittrack/internal/model"
)

const missing = "n/a"

func optInt(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64) string {
	if v == nil {
		return missing
	}
	return formatFloat(*v)
}

func optText(v *string) string {
	if v == nil {
		return missing
	}
	return *v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderProfile(w io.Writer, p *model.UserProfile) {
	fmt.Fprintf(w, "Welcome, %s!\n", p.Username)
	fmt.Fprintf(w, "Age: %s | Weight: %s kg | Height: %s cm\n", optInt(p.Age), optFloat(p.WeightKg), optFloat(p.HeightCm))
	fmt.Fprintf(w, "Fitness Goal: %s\n", optText(p.FitnessGoal))
}

func renderActivity(w io.Writer, a *model.Activity) {
	fmt.Fprintf(w, "Type: %s, Duration: %d min, Distance: %s km, Calories: %.2f, Heart Rate: %s\n",
		a.ActivityType, a.DurationMinutes, formatFloat(a.DistanceKm), a.CaloriesBurned, optInt(a.HeartRate))
}

func renderGoal(w io.Writer, n int, g *model.Goal) {
	fmt.Fprintf(w, "%d) Weight: %s kg, Distance: %s km, Calories: %s\n",
		n, formatFloat(g.TargetWeight), formatFloat(g.TargetDistance), formatFloat(g.TargetCalories))
}

func renderPlan(w io.Writer, p *model.WorkoutPlan) {
	fmt.Fprintf(w, "Plan Name: %s\n", p.PlanName)
	fmt.Fprintf(w, "Exercises: %s\n", p.Exercises)
	fmt.Fprintf(w, "Schedule: %s\n", p.Schedule)
	fmt.Fprintln(w, "------------------------------")
}

func renderFeedEntry(w io.Writer, e *model.FeedEntry) {
	fmt.Fprintf(w, "%s: %s (%s, %d min, %s km) - %s\n",
		e.Username, e.Caption, e.ActivityType, e.DurationMinutes, formatFloat(e.DistanceKm), e.Timestamp.UTC().Format(time.DateTime))
}
