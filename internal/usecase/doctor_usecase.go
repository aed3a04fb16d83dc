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

var ErrSpecialityNotFound = errors.New("speciality not found")

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, filter *entity.DoctorFilter, page, size int) (*entity.Page[dto.DoctorResponse], error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	practiceRepo   repository.PracticeRepository
	specialityRepo repository.SpecialityRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, practiceRepo repository.PracticeRepository, specialityRepo repository.SpecialityRepository) DoctorUsecase {
	return &doctorUsecase{
		db:             db,
		log:            log,
		doctorRepo:     doctorRepo,
		practiceRepo:   practiceRepo,
		specialityRepo: specialityRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, filter *entity.DoctorFilter, page, size int) (*entity.Page[dto.DoctorResponse], error) {
	if page < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	doctors, total, err := u.doctorRepo.FindAllFiltered(u.db.WithContext(ctx), filter, page, size)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	result := entity.NewPage(converter.DoctorsToResponses(doctors), page, size, total)
	return &result, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	specialities, err := u.resolveReferences(ctx, req.PracticeID, req.SpecialityIDs)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PracticeID:   req.PracticeID,
		Specialities: specialities,
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	specialities, err := u.resolveReferences(ctx, req.PracticeID, req.SpecialityIDs)
	if err != nil {
		return nil, err
	}

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.PracticeID = req.PracticeID
	doctor.Practice = nil

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.doctorRepo.Update(tx, doctor); err != nil {
			return err
		}
		return u.doctorRepo.ReplaceSpecialities(tx, doctor, specialities)
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	doctor.Specialities = specialities
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	rows, err := u.doctorRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

// resolveReferences validates the optional practice reference and loads
// the speciality set, erroring when any referenced id does not exist.
func (u *doctorUsecase) resolveReferences(ctx context.Context, practiceID *uuid.UUID, specialityIDs []uuid.UUID) ([]entity.Speciality, error) {
	if practiceID != nil {
		exists, err := u.practiceRepo.ExistsByID(u.db.WithContext(ctx), *practiceID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrPracticeNotFound
		}
	}

	if len(specialityIDs) == 0 {
		return nil, nil
	}

	specialities, err := u.specialityRepo.FindByIDs(u.db.WithContext(ctx), specialityIDs)
	if err != nil {
		return nil, err
	}
	if len(specialities) != len(uniqueIDs(specialityIDs)) {
		return nil, ErrSpecialityNotFound
	}
	return specialities, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
