package models

import "time"

// PantryItem tracks on-hand inventory. Name is stored lower-cased and acts as
// the aggregation key against grocery list ingredients.
type PantryItem struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_pantry_user_name"`
	Name      string    `gorm:"not null;uniqueIndex:uidx_pantry_user_name"`
	Amount    float64   `gorm:"not null;default:0"`
	Unit      string    `gorm:"not null;default:each"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}
