package database

import "fitlog/internal/models"

// PersistentModels returns the schema-managed GORM models in dependency order:
// every table appears after the tables its foreign keys reference.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.WorkoutSession{},
		&models.StrengthSet{},
		&models.CardioEntry{},
	}
}
