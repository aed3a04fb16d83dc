package repository

import (
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	// FindAllFiltered applies the optional filters conjunctively. The cityID
	// filter joins through practices, the specialityID filter through the
	// doctor_specialities junction table.
	FindAllFiltered(db *gorm.DB, filter *entity.DoctorFilter, page, size int) ([]entity.Doctor, int64, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	ReplaceSpecialities(db *gorm.DB, doctor *entity.Doctor, specialities []entity.Speciality) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
}
