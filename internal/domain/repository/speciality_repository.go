package repository

import (
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecialityRepository interface {
	FindAll(db *gorm.DB) ([]entity.Speciality, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Speciality, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
}
