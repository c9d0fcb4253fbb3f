package db

import (
	"time"

	"fitgenius/internal/models"
	"gorm.io/gorm"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) Create(entry *models.ProgressEntry) error {
	return repo.database.Create(entry).Error
}

// ListForUser returns entries newest-first so the first row is the canonical
// current weight.
func (repo *EntryRepository) ListForUser(userID uint) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) ListForUserRange(userID uint, from time.Time, to time.Time) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) Latest(userID uint) (models.ProgressEntry, error) {
	var entry models.ProgressEntry
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		First(&entry).Error; err != nil {
		return models.ProgressEntry{}, err
	}
	return entry, nil
}
