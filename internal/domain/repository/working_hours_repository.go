package repository

import (
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkingHoursRepository interface {
	Create(db *gorm.DB, workingHours *entity.WorkingHours) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.WorkingHours, error)
	FindAllByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WorkingHours, error)
	Update(db *gorm.DB, workingHours *entity.WorkingHours) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
	// ExistsOverlapping reports whether any window of the doctor on the given
	// weekday overlaps the half-open candidate [startTime, endTime). The
	// window identified by excludeID is skipped when non-nil (update case).
	ExistsOverlapping(db *gorm.DB, doctorID uuid.UUID, weekday entity.Weekday, startTime, endTime string, excludeID *uuid.UUID) (bool, error)
}
