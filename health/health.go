// SPDX-License-Identifier: MIT

package health

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks a measurement outside its domain.
var ErrInvalidInput = errors.New("health: invalid input")

func checkPositive(op, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s: %s=%v must be > 0: %w", op, name, v, ErrInvalidInput)
	}

	return nil
}

// BMIResult is a body mass index with its WHO category.
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// WHO adult BMI cut-offs.
const (
	bmiUnderweight = 18.5
	bmiOverweight  = 25
	bmiObese       = 30
)

// BMI returns weight / height² with height given in centimetres.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if err := checkPositive("BMI", "weight", weightKg); err != nil {
		return BMIResult{}, err
	}
	if err := checkPositive("BMI", "height", heightCm); err != nil {
		return BMIResult{}, err
	}

	m := heightCm / 100
	v := weightKg / (m * m)

	return BMIResult{Value: v, Category: bmiCategory(v)}, nil
}

func bmiCategory(v float64) string {
	switch {
	case v < bmiUnderweight:
		return "underweight"
	case v < bmiOverweight:
		return "normal"
	case v < bmiObese:
		return "overweight"
	default:
		return "obese"
	}
}

// Sex selects the Widmark body water constant.
type Sex int

const (
	Male Sex = iota
	Female
)

// ParseSex accepts "male"/"m" and "female"/"f".
func ParseSex(s string) (Sex, error) {
	switch s {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return Male, fmt.Errorf("sex %q: %w", s, ErrInvalidInput)
	}
}

// Widmark constants.
const (
	widmarkMale    = 0.68
	widmarkFemale  = 0.55
	eliminationPct = 0.015 // % BAC metabolised per hour
)

// BAC estimates blood alcohol concentration in percent with the Widmark
// formula A / (W·1000·r) · 100 − 0.015·t, where A is grams of alcohol, W the
// body weight in kg and t the hours since drinking started. The result never
// drops below 0.
func BAC(alcoholGrams, weightKg float64, sex Sex, hours float64) (float64, error) {
	if err := checkPositive("BAC", "alcohol", alcoholGrams); err != nil {
		return 0, err
	}
	if err := checkPositive("BAC", "weight", weightKg); err != nil {
		return 0, err
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return 0, fmt.Errorf("BAC: hours=%v must be ≥ 0: %w", hours, ErrInvalidInput)
	}

	var r float64
	switch sex {
	case Male:
		r = widmarkMale
	case Female:
		r = widmarkFemale
	default:
		return 0, fmt.Errorf("BAC: sex %d: %w", sex, ErrInvalidInput)
	}

	bac := alcoholGrams/(weightKg*1000*r)*100 - eliminationPct*hours

	return math.Max(bac, 0), nil
}

// WaistToHip returns waist / hip; both must use the same unit.
func WaistToHip(waist, hip float64) (float64, error) {
	if err := checkPositive("WaistToHip", "waist", waist); err != nil {
		return 0, err
	}
	if err := checkPositive("WaistToHip", "hip", hip); err != nil {
		return 0, err
	}

	return waist / hip, nil
}
