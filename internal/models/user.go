package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	GoalLoseWeight     = "lose_weight"
	GoalGainMuscle     = "gain_muscle"
	GoalMaintain       = "maintain"
	GoalImproveFitness = "improve_fitness"
)

const (
	MinAge       = 13
	MaxAge       = 120
	MinHeightCm  = 100
	MaxHeightCm  = 250
	MinWeightLbs = 50
	MaxWeightLbs = 600
)

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Email              string    `gorm:"uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	RecoveryCodeHash   string    `gorm:"not null;default:''"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	Age                int       `gorm:"not null;default:0"`
	Gender             string    `gorm:"not null;default:other"`
	HeightCm           float64   `gorm:"not null;default:0"`
	WeightLbs          float64   `gorm:"not null;default:0"`
	ActivityLevel      string    `gorm:"not null;default:moderate"`
	Goal               string    `gorm:"not null;default:maintain"`
	GoalWeightLbs      *float64  `gorm:""`
	StrictProgram      bool      `gorm:"not null;default:false"`
	Zipcode            string    `gorm:"not null;default:''"`
	HouseholdSize      int       `gorm:"not null;default:1"`
	OnboardingComplete bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time
}
