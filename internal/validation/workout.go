package validation

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const dateLayout = "2006-01-02"

const (
	// MaxMeasurement is the largest value a decimal(10,2) column holds.
	MaxMeasurement = 99999999.99
	// MaxReps keeps rep counts within a 32-bit integer column.
	MaxReps = math.MaxInt32
)

// ParseWorkoutDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the calendar
// date at UTC midnight. For timestamps the date is taken as written, ignoring the offset.
func ParseWorkoutDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("workoutDate is required")
	}

	if d, err := time.Parse(dateLayout, raw); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("workoutDate must be a date in YYYY-MM-DD format")
}

// ValidateNonNegative rejects negative, NaN and infinite values.
func ValidateNonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a number", field)
	}
	if value < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// ValidateMeasurement checks that value is non-negative and fits a decimal(10,2) column.
func ValidateMeasurement(field string, value float64) error {
	if err := ValidateNonNegative(field, value); err != nil {
		return err
	}
	if value > MaxMeasurement {
		return fmt.Errorf("%s must not exceed %.2f", field, MaxMeasurement)
	}
	return nil
}

// ValidateReps checks 0 <= reps <= MaxReps.
func ValidateReps(field string, reps int) error {
	if reps < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	if reps > MaxReps {
		return fmt.Errorf("%s must not exceed %d", field, MaxReps)
	}
	return nil
}

// ValidatePercentage checks 0 <= value <= 100.
func ValidatePercentage(field string, value float64) error {
	if err := ValidateNonNegative(field, value); err != nil {
		return err
	}
	if value > 100 {
		return fmt.Errorf("%s must not exceed 100", field)
	}
	return nil
}

// ValidateEntryName checks the length of an exercise or activity name as it will be
// stored, after trimming. Blank names are allowed here; such entries are skipped when
// the workout is stored.
func ValidateEntryName(field, name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > MaxNameLength {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxNameLength)
	}
	return nil
}
