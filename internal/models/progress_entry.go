package models

import "time"

// ProgressEntry rows are append-only: there is no edit path, the most recent
// entry by date always wins over the profile-level weight.
type ProgressEntry struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index:idx_entry_user_date"`
	Date         time.Time `gorm:"type:date;not null;index:idx_entry_user_date"`
	WeightLbs    float64   `gorm:"not null"`
	BodyFatPct   *float64  `gorm:""`
	WaistInches  *float64  `gorm:""`
	NeckInches   *float64  `gorm:""`
	HipInches    *float64  `gorm:""`
	Notes        string    `gorm:"not null;default:''"`
	PhotoID      string    `gorm:"not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`
}
