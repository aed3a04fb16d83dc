package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-provider/internal/converter"
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/domain/repository"
	"doctor-provider/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrWorkingHoursNotFound    = errors.New("working hours not found")
	ErrInvalidWeekday          = errors.New("invalid weekday, must be between 1 and 7")
	ErrInvalidTimeFormat       = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange        = errors.New("start time must be before end time")
	ErrOverlappingWorkingHours = errors.New("working hours overlap an existing window for this doctor")
)

type WorkingHoursUsecase interface {
	CreateWorkingHours(ctx context.Context, doctorID uuid.UUID, req *dto.CreateWorkingHoursRequest) (*dto.WorkingHoursResponse, error)
	GetWorkingHoursByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.WorkingHoursListResponse, error)
	UpdateWorkingHours(ctx context.Context, id uuid.UUID, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, error)
	DeleteWorkingHours(ctx context.Context, id uuid.UUID) error
	GetDoctorAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorAvailabilityResponse, error)
}

type workingHoursUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	workingHoursRepo repository.WorkingHoursRepository
	slotRepo         repository.SlotRepository
	doctorRepo       repository.DoctorRepository
	auditService     service.AuditService
	availability     *service.AvailabilityService
	horizonWeeks     int
	slotDuration     time.Duration
	location         *time.Location
}

func NewWorkingHoursUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workingHoursRepo repository.WorkingHoursRepository,
	slotRepo repository.SlotRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	availability *service.AvailabilityService,
	horizonWeeks int,
	slotDuration time.Duration,
	location *time.Location,
) WorkingHoursUsecase {
	if location == nil {
		location = time.UTC
	}
	return &workingHoursUsecase{
		db:               db,
		log:              log,
		workingHoursRepo: workingHoursRepo,
		slotRepo:         slotRepo,
		doctorRepo:       doctorRepo,
		auditService:     auditService,
		availability:     availability,
		horizonWeeks:     horizonWeeks,
		slotDuration:     slotDuration,
		location:         location,
	}
}

// validateWindow converts and checks the external weekday/time representation.
// The returned bounds are re-rendered in zero-padded HH:MM form, so every
// later comparison and the stored value see one canonical spelling even when
// the caller sent an unpadded hour like "8:00".
func validateWindow(weekdayValue int, startTime, endTime string) (entity.Weekday, string, string, error) {
	weekday, err := entity.WeekdayFromValue(weekdayValue)
	if err != nil {
		return 0, "", "", ErrInvalidWeekday
	}
	start, err := time.Parse(entity.TimeOfDayLayout, startTime)
	if err != nil {
		return 0, "", "", ErrInvalidTimeFormat
	}
	end, err := time.Parse(entity.TimeOfDayLayout, endTime)
	if err != nil {
		return 0, "", "", ErrInvalidTimeFormat
	}
	if !start.Before(end) {
		return 0, "", "", ErrInvalidTimeRange
	}
	return weekday, start.Format(entity.TimeOfDayLayout), end.Format(entity.TimeOfDayLayout), nil
}

// CreateWorkingHours persists a new window after the overlap gate and
// materializes its slots over the configured horizon. The overlap check and
// the insert share one transaction; the exclusion constraint in the schema
// guards the same invariant against concurrent writers on other connections.
func (u *workingHoursUsecase) CreateWorkingHours(ctx context.Context, doctorID uuid.UUID, req *dto.CreateWorkingHoursRequest) (*dto.WorkingHoursResponse, error) {
	weekday, startTime, endTime, err := validateWindow(req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	exists, err := u.doctorRepo.ExistsByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to check doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if !exists {
		return nil, ErrDoctorNotFound
	}

	workingHours := &entity.WorkingHours{
		DoctorID:  doctorID,
		Weekday:   weekday,
		StartTime: startTime,
		EndTime:   endTime,
	}

	var generated int
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		overlapping, err := u.workingHoursRepo.ExistsOverlapping(tx, doctorID, weekday, startTime, endTime, nil)
		if err != nil {
			return err
		}
		if overlapping {
			return ErrOverlappingWorkingHours
		}

		if err := u.workingHoursRepo.Create(tx, workingHours); err != nil {
			return err
		}

		slots, err := service.GenerateSlots(workingHours, time.Now(), u.horizonWeeks, u.slotDuration, u.location)
		if err != nil {
			return err
		}
		if err := u.slotRepo.CreateAll(tx, slots); err != nil {
			return err
		}
		generated = len(slots)

		return u.auditService.LogCreate(tx, entity.AuditActionWorkingHoursCreate,
			"working_hours", workingHours.ID.String(), converter.WorkingHoursToResponse(workingHours))
	})
	if err != nil {
		if !errors.Is(err, ErrOverlappingWorkingHours) {
			u.log.Warnf("Failed to create working hours for doctor %s: %+v", doctorID, err)
		}
		return nil, err
	}

	u.availability.SetAvailable(ctx, workingHours.ID, int64(generated))

	return converter.WorkingHoursToResponse(workingHours), nil
}

func (u *workingHoursUsecase) GetWorkingHoursByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.WorkingHoursListResponse, error) {
	exists, err := u.doctorRepo.ExistsByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDoctorNotFound
	}

	windows, err := u.workingHoursRepo.FindAllByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find working hours for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.WorkingHoursListResponse{
		WorkingHours: converter.WorkingHoursToResponses(windows),
		Total:        len(windows),
	}, nil
}

// UpdateWorkingHours replaces the window as a whole and reconciles its slots:
// AVAILABLE slots are dropped and regenerated for the new bounds, BOOKED and
// BLOCKED slots are kept untouched. Regenerated slots that would collide with
// a kept slot are skipped.
func (u *workingHoursUsecase) UpdateWorkingHours(ctx context.Context, id uuid.UUID, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, error) {
	weekday, startTime, endTime, err := validateWindow(req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	var workingHours *entity.WorkingHours
	var available int64
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		workingHours, err = u.workingHoursRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if workingHours == nil {
			return ErrWorkingHoursNotFound
		}

		overlapping, err := u.workingHoursRepo.ExistsOverlapping(tx, workingHours.DoctorID, weekday, startTime, endTime, &id)
		if err != nil {
			return err
		}
		if overlapping {
			return ErrOverlappingWorkingHours
		}

		oldValue := converter.WorkingHoursToResponse(workingHours)

		workingHours.Weekday = weekday
		workingHours.StartTime = startTime
		workingHours.EndTime = endTime
		if err := u.workingHoursRepo.Update(tx, workingHours); err != nil {
			return err
		}

		if _, err := u.slotRepo.DeleteAvailableByWorkingHoursID(tx, id); err != nil {
			return err
		}

		kept, err := u.slotRepo.FindAllByWorkingHoursID(tx, id)
		if err != nil {
			return err
		}

		candidates, err := service.GenerateSlots(workingHours, time.Now(), u.horizonWeeks, u.slotDuration, u.location)
		if err != nil {
			return err
		}
		fresh := withoutCollisions(candidates, kept)
		if err := u.slotRepo.CreateAll(tx, fresh); err != nil {
			return err
		}
		available = int64(len(fresh))

		return u.auditService.LogUpdate(tx, entity.AuditActionWorkingHoursUpdate,
			"working_hours", id.String(), oldValue, converter.WorkingHoursToResponse(workingHours))
	})
	if err != nil {
		if !errors.Is(err, ErrWorkingHoursNotFound) && !errors.Is(err, ErrOverlappingWorkingHours) {
			u.log.Warnf("Failed to update working hours %s: %+v", id, err)
		}
		return nil, err
	}

	u.availability.SetAvailable(ctx, id, available)

	return converter.WorkingHoursToResponse(workingHours), nil
}

// DeleteWorkingHours removes the window and every slot generated from it.
// Slots go first so the window never disappears while still referenced.
func (u *workingHoursUsecase) DeleteWorkingHours(ctx context.Context, id uuid.UUID) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		workingHours, err := u.workingHoursRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if workingHours == nil {
			return ErrWorkingHoursNotFound
		}

		if _, err := u.slotRepo.DeleteAllByWorkingHoursID(tx, id); err != nil {
			return err
		}
		if _, err := u.workingHoursRepo.Delete(tx, id); err != nil {
			return err
		}

		return u.auditService.LogDelete(tx, entity.AuditActionWorkingHoursDelete,
			"working_hours", id.String(), converter.WorkingHoursToResponse(workingHours))
	})
	if err != nil {
		if !errors.Is(err, ErrWorkingHoursNotFound) {
			u.log.Warnf("Failed to delete working hours %s: %+v", id, err)
		}
		return err
	}

	u.availability.Remove(ctx, id)
	return nil
}

// GetDoctorAvailability reports the AVAILABLE slot count per window, served
// from the Redis counters with a database fallback on cache miss.
func (u *workingHoursUsecase) GetDoctorAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorAvailabilityResponse, error) {
	exists, err := u.doctorRepo.ExistsByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDoctorNotFound
	}

	windows, err := u.workingHoursRepo.FindAllByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}

	result := &dto.DoctorAvailabilityResponse{
		DoctorID:     doctorID,
		WorkingHours: make([]dto.WorkingHoursAvailability, len(windows)),
	}
	for i, window := range windows {
		count, ok := u.availability.GetAvailable(ctx, window.ID)
		if !ok {
			count, err = u.slotRepo.CountByWorkingHoursIDAndStatus(u.db.WithContext(ctx), window.ID, entity.SlotStatusAvailable)
			if err != nil {
				return nil, err
			}
			u.availability.SetAvailable(ctx, window.ID, count)
		}
		result.WorkingHours[i] = dto.WorkingHoursAvailability{
			WorkingHoursID: window.ID,
			Weekday:        window.Weekday.Value(),
			StartTime:      window.StartTime,
			EndTime:        window.EndTime,
			AvailableSlots: count,
		}
	}
	return result, nil
}

// withoutCollisions drops candidates that share any instant with a kept slot.
func withoutCollisions(candidates, kept []entity.Slot) []entity.Slot {
	if len(kept) == 0 {
		return candidates
	}
	fresh := make([]entity.Slot, 0, len(candidates))
	for _, candidate := range candidates {
		collides := false
		for _, existing := range kept {
			if candidate.StartAt.Before(existing.EndAt) && candidate.EndAt.After(existing.StartAt) {
				collides = true
				break
			}
		}
		if !collides {
			fresh = append(fresh, candidate)
		}
	}
	return fresh
}
