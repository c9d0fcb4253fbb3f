package models

import "time"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Workout struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;default:0;index"` // 0 marks a built-in library workout
	Name            string    `gorm:"not null"`
	Category        string    `gorm:"not null;default:strength"`
	DurationMinutes int       `gorm:"not null;default:30"`
	Difficulty      string    `gorm:"not null;default:beginner"`
	CaloriesBurned  int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"not null"`
}
