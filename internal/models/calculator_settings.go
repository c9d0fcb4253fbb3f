package models

import "time"

const (
	GoalWeightDerived = "derived"
	GoalWeightLocked  = "locked"
)

const (
	MinDailyDeficit = 200
	MaxDailyDeficit = 1000
)

// CalculatorSettings stores per-user overrides for the nutrition and
// weight-loss engines. An explicit DailyCalorieTarget bypasses the deficit
// calculation entirely. GoalWeightState implements the
// derived-until-manually-edited rule for goal weight: "locked" is entered
// only by an explicit user edit and cleared only by an explicit unlock.
type CalculatorSettings struct {
	ID                 uint     `gorm:"primaryKey"`
	UserID             uint     `gorm:"not null;uniqueIndex"`
	DailyCalorieTarget *int     `gorm:""`
	DailyDeficit       int      `gorm:"not null;default:500"`
	MonthsTimeline     float64  `gorm:"not null;default:3"`
	GoalWeightState    string   `gorm:"not null;default:derived"`
	GoalWeightLbs      *float64 `gorm:""`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
