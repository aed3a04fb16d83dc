package repository

import (
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotAvailability is one row of the grouped available-slot count used to
// warm the availability cache.
type SlotAvailability struct {
	WorkingHoursID uuid.UUID
	Available      int64
}

type SlotRepository interface {
	Create(db *gorm.DB, slot *entity.Slot) error
	CreateAll(db *gorm.DB, slots []entity.Slot) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Slot, error)
	FindAllFiltered(db *gorm.DB, filter *entity.SlotFilter, page, size int) ([]entity.Slot, int64, error)
	FindAllByWorkingHoursID(db *gorm.DB, workingHoursID uuid.UUID) ([]entity.Slot, error)
	Update(db *gorm.DB, slot *entity.Slot) error
	// UpdateStatusConditional flips the status of one slot only when it still
	// has the expected current status, returning the number of rows changed.
	// Zero rows with an existing slot means a concurrent transition won.
	UpdateStatusConditional(db *gorm.DB, id uuid.UUID, current, next entity.SlotStatus) (int64, error)
	DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteAllByWorkingHoursID(db *gorm.DB, workingHoursID uuid.UUID) (int64, error)
	DeleteAvailableByWorkingHoursID(db *gorm.DB, workingHoursID uuid.UUID) (int64, error)
	ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error)
	ExistsByIDAndStatus(db *gorm.DB, id uuid.UUID, status entity.SlotStatus) (bool, error)
	CountByWorkingHoursIDAndStatus(db *gorm.DB, workingHoursID uuid.UUID, status entity.SlotStatus) (int64, error)
	// CountAvailableGrouped returns the AVAILABLE slot count per working-hours
	// window, batched by primary key for the startup cache sync.
	CountAvailableGrouped(db *gorm.DB, limit int, afterID *uuid.UUID) ([]SlotAvailability, error)
}
