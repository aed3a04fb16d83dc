package repository

import (
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CityRepository interface {
	Create(db *gorm.DB, city *entity.City) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.City, error)
	// FindAllFiltered returns one page of cities plus the overall count.
	// name and zipCode are optional substring/exact filters.
	FindAllFiltered(db *gorm.DB, name, zipCode string, page, size int) ([]entity.City, int64, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
}
