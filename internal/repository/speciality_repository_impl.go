package repository

import (
	"doctor-provider/internal/domain/entity"
	domainRepo "doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type specialityRepository struct{}

func NewSpecialityRepository() domainRepo.SpecialityRepository {
	return &specialityRepository{}
}

func (r *specialityRepository) FindAll(db *gorm.DB) ([]entity.Speciality, error) {
	var specialities []entity.Speciality
	err := db.Order("type ASC").Find(&specialities).Error
	if err != nil {
		return nil, err
	}
	return specialities, nil
}

func (r *specialityRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Speciality, error) {
	if len(ids) == 0 {
		return []entity.Speciality{}, nil
	}
	var specialities []entity.Speciality
	err := db.Where("id IN ?", ids).Find(&specialities).Error
	if err != nil {
		return nil, err
	}
	return specialities, nil
}

func (r *specialityRepository) ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Speciality{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
