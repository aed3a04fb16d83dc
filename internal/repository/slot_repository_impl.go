package repository

import (
	"errors"

	"doctor-provider/internal/domain/entity"
	domainRepo "doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Batch size for bulk slot inserts.
const slotInsertBatchSize = 200

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) Create(db *gorm.DB, slot *entity.Slot) error {
	return db.Omit("WorkingHours").Create(slot).Error
}

func (r *slotRepository) CreateAll(db *gorm.DB, slots []entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	return db.Omit("WorkingHours").CreateInBatches(slots, slotInsertBatchSize).Error
}

func (r *slotRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindAllByWorkingHoursID(db *gorm.DB, workingHoursID uuid.UUID) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.Where("working_hours_id = ?", workingHoursID).Order("start_at ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// FindAllFiltered applies the optional filters conjunctively. The doctorID
// filter joins through working_hours since the doctor is not a direct slot
// attribute. Date bounds compare only the date part of start_at, inclusive.
func (r *slotRepository) FindAllFiltered(db *gorm.DB, filter *entity.SlotFilter, page, size int) ([]entity.Slot, int64, error) {
	query := db.Model(&entity.Slot{})

	if filter != nil {
		if filter.DoctorID != nil {
			query = query.
				Joins("JOIN working_hours ON working_hours.id = slots.working_hours_id").
				Where("working_hours.doctor_id = ?", *filter.DoctorID)
		}
		if filter.WorkingHoursID != nil {
			query = query.Where("slots.working_hours_id = ?", *filter.WorkingHoursID)
		}
		if filter.DateFrom != nil {
			query = query.Where("DATE(slots.start_at) >= DATE(?)", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("DATE(slots.start_at) <= DATE(?)", *filter.DateTo)
		}
		if filter.Status != nil {
			query = query.Where("slots.status = ?", *filter.Status)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var slots []entity.Slot
	err := query.Order("slots.start_at ASC").Limit(size).Offset(page * size).Find(&slots).Error
	if err != nil {
		return nil, 0, err
	}
	return slots, total, nil
}

func (r *slotRepository) Update(db *gorm.DB, slot *entity.Slot) error {
	return db.Omit("WorkingHours").Save(slot).Error
}

func (r *slotRepository) UpdateStatusConditional(db *gorm.DB, id uuid.UUID, current, next entity.SlotStatus) (int64, error) {
	result := db.Model(&entity.Slot{}).
		Where("id = ? AND status = ?", id, current).
		Update("status", next)
	return result.RowsAffected, result.Error
}

func (r *slotRepository) DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Slot{})
	return result.RowsAffected, result.Error
}

func (r *slotRepository) DeleteAllByWorkingHoursID(db *gorm.DB, workingHoursID uuid.UUID) (int64, error) {
	result := db.Where("working_hours_id = ?", workingHoursID).Delete(&entity.Slot{})
	return result.RowsAffected, result.Error
}

func (r *slotRepository) DeleteAvailableByWorkingHoursID(db *gorm.DB, workingHoursID uuid.UUID) (int64, error) {
	result := db.
		Where("working_hours_id = ? AND status = ?", workingHoursID, entity.SlotStatusAvailable).
		Delete(&entity.Slot{})
	return result.RowsAffected, result.Error
}

func (r *slotRepository) ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Slot{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *slotRepository) ExistsByIDAndStatus(db *gorm.DB, id uuid.UUID, status entity.SlotStatus) (bool, error) {
	var count int64
	err := db.Model(&entity.Slot{}).Where("id = ? AND status = ?", id, status).Count(&count).Error
	return count > 0, err
}

func (r *slotRepository) CountByWorkingHoursIDAndStatus(db *gorm.DB, workingHoursID uuid.UUID, status entity.SlotStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Slot{}).
		Where("working_hours_id = ? AND status = ?", workingHoursID, status).
		Count(&count).Error
	return count, err
}

func (r *slotRepository) CountAvailableGrouped(db *gorm.DB, limit int, afterID *uuid.UUID) ([]domainRepo.SlotAvailability, error) {
	query := db.Model(&entity.Slot{}).
		Select("working_hours_id, COUNT(*) AS available").
		Where("status = ?", entity.SlotStatusAvailable).
		Group("working_hours_id").
		Order("working_hours_id ASC").
		Limit(limit)
	if afterID != nil {
		query = query.Where("working_hours_id > ?", *afterID)
	}

	var rows []domainRepo.SlotAvailability
	err := query.Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
