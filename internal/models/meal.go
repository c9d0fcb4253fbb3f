package models

import "time"

const (
	MealSlotBreakfast = "breakfast"
	MealSlotLunch     = "lunch"
	MealSlotDinner    = "dinner"
	MealSlotSnack     = "snack"
)

type Meal struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;default:0;index"` // 0 marks a built-in library meal
	Name        string    `gorm:"not null"`
	Slot        string    `gorm:"not null;default:dinner"`
	Calories    int       `gorm:"not null;default:0"`
	ProteinG    float64   `gorm:"not null;default:0"`
	CarbsG      float64   `gorm:"not null;default:0"`
	FatG        float64   `gorm:"not null;default:0"`
	Ingredients []string  `gorm:"serializer:json"`
	CreatedAt   time.Time `gorm:"not null"`
}
