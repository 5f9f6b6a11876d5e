// Package nutrition derives anthropometric and energy metrics used in
// consultations. Every function is pure.
package nutrition

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHeight        = errors.New("height must be greater than zero")
	ErrInvalidWeight        = errors.New("weight must be greater than zero")
	ErrInvalidAge           = errors.New("age must not be negative")
	ErrUnknownActivityLevel = errors.New("unknown activity level")
)

// BMIClass is the classification band of a body mass index.
type BMIClass string

const (
	BMIUnderweight BMIClass = "underweight"
	BMINormal      BMIClass = "normal"
	BMIOverweight  BMIClass = "overweight"
)

// Band lower bounds are inclusive.
const (
	normalBMIFloor     = 18.5
	overweightBMIFloor = 25.0
)

// BMI returns weightKg / (heightCm/100)^2.
func BMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, ErrInvalidHeight
	}
	meters := heightCm / 100
	return weightKg / (meters * meters), nil
}

func ClassifyBMI(bmi float64) BMIClass {
	switch {
	case bmi < normalBMIFloor:
		return BMIUnderweight
	case bmi < overweightBMIFloor:
		return BMINormal
	default:
		return BMIOverweight
	}
}

// BasalEnergyExpenditure is the Mifflin-St Jeor estimate with the +5 sex
// constant: 10*weight + 6.25*height - 5*age + 5.
func BasalEnergyExpenditure(weightKg, heightCm float64, ageYears int) (float64, error) {
	if weightKg <= 0 {
		return 0, ErrInvalidWeight
	}
	if heightCm <= 0 {
		return 0, ErrInvalidHeight
	}
	if ageYears < 0 {
		return 0, ErrInvalidAge
	}
	return 10*weightKg + 6.25*heightCm - 5*float64(ageYears) + 5, nil
}

// ActivityLevel names one of the fixed activity factors.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "light"
	ModeratelyActive ActivityLevel = "moderate"
	VeryActive       ActivityLevel = "active"
	Athlete          ActivityLevel = "athlete"
)

var activityFactors = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	Athlete:          1.9,
}

// ActivityLevels lists the levels from sedentary to athlete.
var ActivityLevels = []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, Athlete}

func (l ActivityLevel) Factor() (float64, error) {
	f, ok := activityFactors[l]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivityLevel, string(l))
	}
	return f, nil
}

// TotalEnergyExpenditure scales bee by activityFactor, which must be one of
// the factors behind ActivityLevels.
func TotalEnergyExpenditure(bee, activityFactor float64) (float64, error) {
	for _, f := range activityFactors {
		if f == activityFactor {
			return bee * activityFactor, nil
		}
	}
	return 0, fmt.Errorf("%w: factor %v", ErrUnknownActivityLevel, activityFactor)
}

// Macros holds daily gram targets.
type Macros struct {
	ProteinG float64
	FatG     float64
	CarbG    float64
}

// NegativeCarbs reports whether protein and fat targets exceed the energy
// budget.
func (m Macros) NegativeCarbs() bool {
	return m.CarbG < 0
}

const (
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

// MacroTargets fills the energy left after protein and fat with carbohydrate.
// CarbG is not clamped and may be negative.
func MacroTargets(weightKg, proteinGPerKg, fatGPerKg, totalEnergy float64) Macros {
	protein := weightKg * proteinGPerKg
	fat := weightKg * fatGPerKg
	carb := (totalEnergy - protein*kcalPerGramProtein - fat*kcalPerGramFat) / kcalPerGramCarb
	return Macros{ProteinG: protein, FatG: fat, CarbG: carb}
}
