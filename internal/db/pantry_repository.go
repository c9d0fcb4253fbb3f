package db

import (
	"errors"
	"strings"
	"time"

	"fitgenius/internal/models"
	"gorm.io/gorm"
)

type PantryRepository struct {
	database *gorm.DB
}

func NewPantryRepository(database *gorm.DB) *PantryRepository {
	return &PantryRepository{database: database}
}

func (repo *PantryRepository) ListForUser(userID uint) ([]models.PantryItem, error) {
	items := make([]models.PantryItem, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AmountsByName returns the pantry as the lower-cased name -> amount map the
// grocery consolidation engine consumes.
func (repo *PantryRepository) AmountsByName(userID uint) (map[string]float64, error) {
	items, err := repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	amounts := make(map[string]float64, len(items))
	for _, item := range items {
		amounts[strings.ToLower(item.Name)] += item.Amount
	}
	return amounts, nil
}

// Adjust adds delta to an item's on-hand amount, creating the row when it does
// not exist and floors the stored amount at zero. Used both by pantry edits
// and by grocery check-off/uncheck.
func (repo *PantryRepository) Adjust(userID uint, name string, delta float64, unit string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return errors.New("pantry item name is required")
	}

	var item models.PantryItem
	err := repo.database.Where("user_id = ? AND name = ?", userID, name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		amount := delta
		if amount < 0 {
			amount = 0
		}
		return repo.database.Create(&models.PantryItem{
			UserID:    userID,
			Name:      name,
			Amount:    amount,
			Unit:      unit,
			CreatedAt: time.Now(),
		}).Error
	}
	if err != nil {
		return err
	}

	amount := item.Amount + delta
	if amount < 0 {
		amount = 0
	}
	return repo.database.Model(&item).Update("amount", amount).Error
}

func (repo *PantryRepository) Remove(userID uint, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	return repo.database.
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&models.PantryItem{}).Error
}
