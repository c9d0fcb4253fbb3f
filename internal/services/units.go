package services

import (
	"fmt"
	"math"
	"strings"

	"fitgenius/internal/models"
)

const lbsPerKg = 2.20462
const cmPerInch = 2.54

// ActivityMultipliers is the single source of truth for valid activity
// levels, shared by the nutrition engine, the weight-loss planner, and
// profile validation.
var ActivityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

func LbsToKg(lbs float64) float64 {
	return lbs * 0.453592
}

func KgToLbs(kg float64) float64 {
	return kg * lbsPerKg
}

func CmToFeetInches(cm float64) (int, int) {
	totalInches := int(math.Round(cm / cmPerInch))
	return totalInches / 12, totalInches % 12
}

func FeetInchesToCm(feet int, inches int) float64 {
	return float64(feet*12+inches) * cmPerInch
}

func InchesToCm(inches float64) float64 {
	return inches * cmPerInch
}

type ProfileInput struct {
	Age           int
	Gender        string
	HeightCm      float64
	WeightLbs     float64
	ActivityLevel string
	Goal          string
	GoalWeightLbs *float64
	Zipcode       string
	HouseholdSize int
}

// SanitizeProfile normalizes enum casing and trims free-text fields before
// validation.
func SanitizeProfile(input ProfileInput) ProfileInput {
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.ActivityLevel = strings.ToLower(strings.TrimSpace(input.ActivityLevel))
	input.Goal = strings.ToLower(strings.TrimSpace(input.Goal))
	input.Zipcode = strings.TrimSpace(input.Zipcode)
	if input.HouseholdSize <= 0 {
		input.HouseholdSize = 1
	}
	return input
}

func ValidateProfile(input ProfileInput) error {
	if input.Age < models.MinAge || input.Age > models.MaxAge {
		return fmt.Errorf("age must be between %d and %d", models.MinAge, models.MaxAge)
	}
	switch input.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return fmt.Errorf("unknown gender %q", input.Gender)
	}
	if input.HeightCm < models.MinHeightCm || input.HeightCm > models.MaxHeightCm {
		return fmt.Errorf("height must be between %d and %d cm", models.MinHeightCm, models.MaxHeightCm)
	}
	if input.WeightLbs < models.MinWeightLbs || input.WeightLbs > models.MaxWeightLbs {
		return fmt.Errorf("weight must be between %d and %d lbs", models.MinWeightLbs, models.MaxWeightLbs)
	}
	if _, known := ActivityMultipliers[input.ActivityLevel]; !known {
		return fmt.Errorf("unknown activity level %q", input.ActivityLevel)
	}
	switch input.Goal {
	case models.GoalLoseWeight, models.GoalGainMuscle, models.GoalMaintain, models.GoalImproveFitness:
	default:
		return fmt.Errorf("unknown goal %q", input.Goal)
	}
	if input.GoalWeightLbs != nil {
		if *input.GoalWeightLbs < models.MinWeightLbs || *input.GoalWeightLbs > models.MaxWeightLbs {
			return fmt.Errorf("goal weight must be between %d and %d lbs", models.MinWeightLbs, models.MaxWeightLbs)
		}
	}
	if input.HouseholdSize < 1 || input.HouseholdSize > 12 {
		return fmt.Errorf("household size must be between 1 and 12")
	}
	return nil
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
