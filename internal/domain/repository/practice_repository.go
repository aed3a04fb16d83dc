package repository

import (
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeRepository interface {
	Create(db *gorm.DB, practice *entity.Practice) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Practice, error)
	FindAllFiltered(db *gorm.DB, cityID *uuid.UUID, name string, page, size int) ([]entity.Practice, int64, error)
	Update(db *gorm.DB, practice *entity.Practice) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
}
