package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Entries  *EntryRepository
	Settings *SettingsRepository
	Library  *LibraryRepository
	Plans    *PlanRepository
	Pantry   *PantryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Entries:  NewEntryRepository(database),
		Settings: NewSettingsRepository(database),
		Library:  NewLibraryRepository(database),
		Plans:    NewPlanRepository(database),
		Pantry:   NewPantryRepository(database),
	}
}
