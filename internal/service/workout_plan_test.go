package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlan(t *testing.T) {
	s := newServices(t)
	alice := s.signUp(t, "alice")
	bob := s.signUp(t, "bob")

	id, err := s.plans.CreatePlan(alice, "Push day", "Bench press,  Dips,Push-ups", "Monday, Friday")
	require.NoError(t, err)
	_, err = s.plans.CreatePlan(alice, "Pull day", "", "")
	require.NoError(t, err)
	_, err = s.plans.CreatePlan(bob, "Legs", "Squats", "Daily")
	require.NoError(t, err)

	plans, err := s.plans.Plans(alice)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, id, plans[0].ID)
	assert.Equal(t, "Bench press,  Dips,Push-ups", plans[0].Exercises)
	assert.Equal(t, "Monday, Friday", plans[0].Schedule)
	assert.Equal(t, "Pull day", plans[1].PlanName)

	_, err = s.plans.CreatePlan(404, "Ghost", "", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPredefinedPlan(t *testing.T) {
	s := newServices(t)

	tests := []struct {
		level string
		want  string
	}{
		{"beginner", "Walking, Bodyweight Squats, Push-ups, Yoga"},
		{"Intermediate", "Running, Dumbbell Exercises, Planks, Jump Rope"},
		{"ADVANCED", "HIIT, Weightlifting, Sprinting, Deadlifts"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := s.plans.PredefinedPlan(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, level := range []string{"pro", "", "Invalid fitness level."} {
		_, err := s.plans.PredefinedPlan(level)
		assert.ErrorIs(t, err, ErrInvalidLevel, level)
	}
}

func TestPredefinedLevels(t *testing.T) {
	s := newServices(t)

	for _, level := range s.plans.PredefinedLevels() {
		_, err := s.plans.PredefinedPlan(level)
		assert.NoError(t, err, level)
	}
}
