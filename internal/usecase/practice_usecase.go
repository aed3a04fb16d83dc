package usecase

import (
	"context"
	"errors"

	"doctor-provider/internal/converter"
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPracticeNotFound = errors.New("practice not found")
	ErrCityNotFound     = errors.New("city not found")
)

type PracticeUsecase interface {
	ListPractices(ctx context.Context, cityID *uuid.UUID, name string, page, size int) (*entity.Page[dto.PracticeResponse], error)
	CreatePractice(ctx context.Context, req *dto.CreatePracticeRequest) (*dto.PracticeResponse, error)
	UpdatePractice(ctx context.Context, id uuid.UUID, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error)
	DeletePractice(ctx context.Context, id uuid.UUID) error
}

type practiceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	practiceRepo repository.PracticeRepository
	cityRepo     repository.CityRepository
}

func NewPracticeUsecase(db *gorm.DB, log *logrus.Logger, practiceRepo repository.PracticeRepository, cityRepo repository.CityRepository) PracticeUsecase {
	return &practiceUsecase{
		db:           db,
		log:          log,
		practiceRepo: practiceRepo,
		cityRepo:     cityRepo,
	}
}

func (u *practiceUsecase) ListPractices(ctx context.Context, cityID *uuid.UUID, name string, page, size int) (*entity.Page[dto.PracticeResponse], error) {
	if page < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	practices, total, err := u.practiceRepo.FindAllFiltered(u.db.WithContext(ctx), cityID, name, page, size)
	if err != nil {
		u.log.Warnf("Failed to list practices: %+v", err)
		return nil, err
	}

	result := entity.NewPage(converter.PracticesToResponses(practices), page, size, total)
	return &result, nil
}

func (u *practiceUsecase) CreatePractice(ctx context.Context, req *dto.CreatePracticeRequest) (*dto.PracticeResponse, error) {
	cityExists, err := u.cityRepo.ExistsByID(u.db.WithContext(ctx), req.CityID)
	if err != nil {
		return nil, err
	}
	if !cityExists {
		return nil, ErrCityNotFound
	}

	practice := &entity.Practice{
		Name:        req.Name,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		Phone:       req.Phone,
		Email:       req.Email,
		PostalCode:  req.PostalCode,
		CityID:      req.CityID,
	}

	if err := u.practiceRepo.Create(u.db.WithContext(ctx), practice); err != nil {
		u.log.Warnf("Failed to create practice: %+v", err)
		return nil, err
	}

	return converter.PracticeToResponse(practice), nil
}

func (u *practiceUsecase) UpdatePractice(ctx context.Context, id uuid.UUID, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error) {
	practice, err := u.practiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if practice == nil {
		return nil, ErrPracticeNotFound
	}

	cityExists, err := u.cityRepo.ExistsByID(u.db.WithContext(ctx), req.CityID)
	if err != nil {
		return nil, err
	}
	if !cityExists {
		return nil, ErrCityNotFound
	}

	practice.Name = req.Name
	practice.Street = req.Street
	practice.HouseNumber = req.HouseNumber
	practice.Phone = req.Phone
	practice.Email = req.Email
	practice.PostalCode = req.PostalCode
	practice.CityID = req.CityID
	practice.City = nil

	if err := u.practiceRepo.Update(u.db.WithContext(ctx), practice); err != nil {
		u.log.Warnf("Failed to update practice %s: %+v", id, err)
		return nil, err
	}

	return converter.PracticeToResponse(practice), nil
}

func (u *practiceUsecase) DeletePractice(ctx context.Context, id uuid.UUID) error {
	rows, err := u.practiceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete practice %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPracticeNotFound
	}
	return nil
}
