package usecase

import (
	"context"

	"doctor-provider/internal/converter"
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CityUsecase interface {
	ListCities(ctx context.Context, name, zipCode string, page, size int) (*entity.Page[dto.CityResponse], error)
}

type cityUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	cityRepo repository.CityRepository
}

func NewCityUsecase(db *gorm.DB, log *logrus.Logger, cityRepo repository.CityRepository) CityUsecase {
	return &cityUsecase{
		db:       db,
		log:      log,
		cityRepo: cityRepo,
	}
}

func (u *cityUsecase) ListCities(ctx context.Context, name, zipCode string, page, size int) (*entity.Page[dto.CityResponse], error) {
	if page < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	cities, total, err := u.cityRepo.FindAllFiltered(u.db.WithContext(ctx), name, zipCode, page, size)
	if err != nil {
		u.log.Warnf("Failed to list cities: %+v", err)
		return nil, err
	}

	result := entity.NewPage(converter.CitiesToResponses(cities), page, size, total)
	return &result, nil
}
