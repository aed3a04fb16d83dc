package repository

import (
	"errors"

	"doctor-provider/internal/domain/entity"
	domainRepo "doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workingHoursRepository struct{}

func NewWorkingHoursRepository() domainRepo.WorkingHoursRepository {
	return &workingHoursRepository{}
}

func (r *workingHoursRepository) Create(db *gorm.DB, workingHours *entity.WorkingHours) error {
	return db.Omit("Doctor", "Slots").Create(workingHours).Error
}

func (r *workingHoursRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.WorkingHours, error) {
	var workingHours entity.WorkingHours
	err := db.Where("id = ?", id).First(&workingHours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workingHours, nil
}

func (r *workingHoursRepository) FindAllByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WorkingHours, error) {
	var windows []entity.WorkingHours
	err := db.Where("doctor_id = ?", doctorID).Order("weekday ASC, start_time ASC").Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *workingHoursRepository) Update(db *gorm.DB, workingHours *entity.WorkingHours) error {
	return db.Omit("Doctor", "Slots").Save(workingHours).Error
}

func (r *workingHoursRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.WorkingHours{})
	return result.RowsAffected, result.Error
}

func (r *workingHoursRepository) ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.WorkingHours{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsOverlapping loads the doctor's windows for the weekday and applies
// entity.Overlaps to each, so the half-open interval rule lives in exactly
// one place. Run it on the transaction that performs the write; the schema's
// exclusion constraint backstops concurrent writers on other connections.
func (r *workingHoursRepository) ExistsOverlapping(db *gorm.DB, doctorID uuid.UUID, weekday entity.Weekday, startTime, endTime string, excludeID *uuid.UUID) (bool, error) {
	query := db.
		Where("doctor_id = ?", doctorID).
		Where("weekday = ?", weekday)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var windows []entity.WorkingHours
	if err := query.Find(&windows).Error; err != nil {
		return false, err
	}

	candidate := &entity.WorkingHours{Weekday: weekday, StartTime: startTime, EndTime: endTime}
	for i := range windows {
		if windows[i].Overlaps(candidate) {
			return true, nil
		}
	}
	return false, nil
}
