package repository

import (
	"errors"

	"doctor-provider/internal/domain/entity"
	domainRepo "doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type practiceRepository struct{}

func NewPracticeRepository() domainRepo.PracticeRepository {
	return &practiceRepository{}
}

func (r *practiceRepository) Create(db *gorm.DB, practice *entity.Practice) error {
	return db.Omit("City").Create(practice).Error
}

func (r *practiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Practice, error) {
	var practice entity.Practice
	err := db.Preload("City").Where("id = ?", id).First(&practice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practice, nil
}

func (r *practiceRepository) FindAllFiltered(db *gorm.DB, cityID *uuid.UUID, name string, page, size int) ([]entity.Practice, int64, error) {
	query := db.Model(&entity.Practice{})
	if cityID != nil {
		query = query.Where("city_id = ?", *cityID)
	}
	if name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var practices []entity.Practice
	err := query.Preload("City").Order("name ASC").Limit(size).Offset(page * size).Find(&practices).Error
	if err != nil {
		return nil, 0, err
	}
	return practices, total, nil
}

func (r *practiceRepository) Update(db *gorm.DB, practice *entity.Practice) error {
	return db.Omit("City").Save(practice).Error
}

func (r *practiceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Practice{})
	return result.RowsAffected, result.Error
}

func (r *practiceRepository) ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Practice{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
