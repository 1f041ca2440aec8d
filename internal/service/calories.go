package service

import (
	"fmt"

	"github.com/templui/fittrack/internal/validation"
	"golang.org/x/text/cases"
)

// AssumedBodyWeightKg is the body weight every estimate uses, regardless of
// the user's stored weight.
const AssumedBodyWeightKg = 70.0

const defaultMET = 5.0

// metByActivity holds MET coefficients keyed by case-folded activity type.
var metByActivity = map[string]float64{
	"running":  10,
	"walking":  4,
	"cycling":  8,
	"swimming": 11,
}

// MET returns the coefficient for an activity type, matched case-insensitively.
// Unknown and empty types get the default of 5.
func MET(activityType string) float64 {
	met, ok := metByActivity[cases.Fold().String(activityType)]
	if ok {
		return met
	}
	return defaultMET
}

// EstimateCalories returns MET * 70kg * minutes / 60.
func EstimateCalories(activityType string, durationMinutes int) (float64, error) {
	err := validation.NonNegative("duration", durationMinutes)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %w", err)
	}

	return MET(activityType) * AssumedBodyWeightKg * float64(durationMinutes) / 60, nil
}
