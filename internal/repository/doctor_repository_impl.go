package repository

import (
	"errors"

	"doctor-provider/internal/domain/entity"
	domainRepo "doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Practice").Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Practice").Preload("Specialities").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAllFiltered(db *gorm.DB, filter *entity.DoctorFilter, page, size int) ([]entity.Doctor, int64, error) {
	query := db.Model(&entity.Doctor{})

	if filter != nil {
		if filter.FirstName != "" {
			query = query.Where("LOWER(doctors.first_name) LIKE LOWER(?)", "%"+filter.FirstName+"%")
		}
		if filter.LastName != "" {
			query = query.Where("LOWER(doctors.last_name) LIKE LOWER(?)", "%"+filter.LastName+"%")
		}
		if filter.PracticeID != nil {
			query = query.Where("doctors.practice_id = ?", *filter.PracticeID)
		}
		if filter.CityID != nil {
			query = query.
				Joins("JOIN practices ON practices.id = doctors.practice_id").
				Where("practices.city_id = ?", *filter.CityID)
		}
		if filter.SpecialityID != nil {
			query = query.
				Joins("JOIN doctor_specialities ON doctor_specialities.doctor_id = doctors.id").
				Where("doctor_specialities.speciality_id = ?", *filter.SpecialityID)
		}
	}

	var total int64
	if err := query.Distinct("doctors.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctors []entity.Doctor
	err := query.
		Preload("Practice").Preload("Specialities").
		Distinct().
		Order("doctors.last_name ASC, doctors.first_name ASC").
		Limit(size).Offset(page * size).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Practice", "Specialities").Save(doctor).Error
}

func (r *doctorRepository) ReplaceSpecialities(db *gorm.DB, doctor *entity.Doctor, specialities []entity.Speciality) error {
	return db.Model(doctor).Association("Specialities").Replace(specialities)
}

func (r *doctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
