package validation

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeValue = errors.New("must not be negative")
	ErrNotFinite     = errors.New("must be a finite number")
)

type number interface {
	~int | ~int64 | ~float64
}

// Finite rejects NaN and ±Inf.
func Finite[T number](field string, value T) error {
	v := float64(value)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %w", field, ErrNotFinite)
	}
	return nil
}

// NonNegative validates a required measurement
func NonNegative[T number](field string, value T) error {
	err := Finite(field, value)
	if err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%s %w", field, ErrNegativeValue)
	}
	return nil
}

// NonNegativeOptional validates a measurement that may be absent
func NonNegativeOptional[T number](field string, value *T) error {
	if value == nil {
		return nil
	}
	return NonNegative(field, *value)
}
