package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"scene-service/internal/models"
)

// MaxListSize bounds every unfiltered read so responses stay finite.
const MaxListSize = 1000

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = gorm.ErrRecordNotFound

// Migrate creates or updates the tables backing every collection.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Shape{},
		&models.Project{},
		&models.Gesture{},
		&models.StatusCheck{},
	)
	return errors.Wrap(err, "auto-migrate collections")
}
