package usecase

import (
	"context"

	"doctor-provider/internal/converter"
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SpecialityUsecase interface {
	ListSpecialities(ctx context.Context) (*dto.SpecialityListResponse, error)
}

type specialityUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialityRepo repository.SpecialityRepository
}

func NewSpecialityUsecase(db *gorm.DB, log *logrus.Logger, specialityRepo repository.SpecialityRepository) SpecialityUsecase {
	return &specialityUsecase{
		db:             db,
		log:            log,
		specialityRepo: specialityRepo,
	}
}

func (u *specialityUsecase) ListSpecialities(ctx context.Context) (*dto.SpecialityListResponse, error) {
	specialities, err := u.specialityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialities: %+v", err)
		return nil, err
	}
	return &dto.SpecialityListResponse{
		Specialities: converter.SpecialitiesToResponses(specialities),
		Total:        len(specialities),
	}, nil
}
