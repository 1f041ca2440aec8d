package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCalories(t *testing.T) {
	tests := []struct {
		activityType string
		duration     int
		want         float64
	}{
		{"running", 30, 350},
		{"Running", 30, 350},
		{"RUNNING", 60, 700},
		{"walking", 60, 280},
		{"Cycling", 45, 420},
		{"swimming", 20, 11 * 70 * 20 / 60.0},
		{"yoga", 60, 350},
		{"", 12, 70},
		{"run", 60, 350},
		{"running", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.activityType, func(t *testing.T) {
			got, err := EstimateCalories(tt.activityType, tt.duration)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEstimateCaloriesMatchesFormula(t *testing.T) {
	for activityType, met := range metByActivity {
		for _, duration := range []int{1, 7, 30, 95} {
			got, err := EstimateCalories(activityType, duration)
			require.NoError(t, err)
			assert.InDelta(t, met*70*float64(duration)/60, got, 1e-9, activityType)
		}
	}
}

func TestEstimateCaloriesRejectsNegativeDuration(t *testing.T) {
	_, err := EstimateCalories("running", -5)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestMET(t *testing.T) {
	assert.Equal(t, 10.0, MET("rUnNiNg"))
	assert.Equal(t, 4.0, MET("Walking"))
	assert.Equal(t, defaultMET, MET("rowing"))
	assert.Equal(t, defaultMET, MET(" running"))
}
