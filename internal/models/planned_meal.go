package models

import "time"

var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type PlannedMeal struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_plan_user_day_slot"`
	Day       string    `gorm:"not null;uniqueIndex:uidx_plan_user_day_slot"`
	Slot      string    `gorm:"not null;uniqueIndex:uidx_plan_user_day_slot"`
	MealID    uint      `gorm:"not null"`
	Servings  int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}
