package repository

import (
	"errors"

	"doctor-provider/internal/domain/entity"
	domainRepo "doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cityRepository struct{}

func NewCityRepository() domainRepo.CityRepository {
	return &cityRepository{}
}

func (r *cityRepository) Create(db *gorm.DB, city *entity.City) error {
	return db.Create(city).Error
}

func (r *cityRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.City, error) {
	var city entity.City
	err := db.Where("id = ?", id).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindAllFiltered(db *gorm.DB, name, zipCode string, page, size int) ([]entity.City, int64, error) {
	query := db.Model(&entity.City{})
	if name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}
	if zipCode != "" {
		query = query.Where("zip_code = ?", zipCode)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cities []entity.City
	err := query.Order("name ASC").Limit(size).Offset(page * size).Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}
	return cities, total, nil
}

func (r *cityRepository) ExistsByID(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.City{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
