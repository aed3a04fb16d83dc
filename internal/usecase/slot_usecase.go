package usecase

import (
	"context"
	"errors"

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
	ErrSlotNotFound      = errors.New("slot not found")
	ErrInvalidPagination = errors.New("invalid pagination, page must be >= 0 and size > 0")
)

type SlotUsecase interface {
	ListSlots(ctx context.Context, filter *entity.SlotFilter, page, size int) (*entity.Page[dto.SlotResponse], error)
	GetSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error)
	BlockSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error)
	UnblockSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error)
	BookSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error)
}

type slotUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.SlotRepository
	auditService service.AuditService
	availability *service.AvailabilityService
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	auditService service.AuditService,
	availability *service.AvailabilityService,
) SlotUsecase {
	return &slotUsecase{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		auditService: auditService,
		availability: availability,
	}
}

func (u *slotUsecase) ListSlots(ctx context.Context, filter *entity.SlotFilter, page, size int) (*entity.Page[dto.SlotResponse], error) {
	if page < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	slots, total, err := u.slotRepo.FindAllFiltered(u.db.WithContext(ctx), filter, page, size)
	if err != nil {
		u.log.Warnf("Failed to list slots: %+v", err)
		return nil, err
	}

	result := entity.NewPage(converter.SlotsToResponses(slots), page, size, total)
	return &result, nil
}

func (u *slotUsecase) GetSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", id, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) BlockSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error) {
	slot, err := u.transition(ctx, id, entity.SlotStatusBlocked, entity.AuditActionSlotBlock)
	if err != nil {
		return nil, err
	}
	u.availability.Decrement(ctx, slot.WorkingHoursID)
	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) UnblockSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error) {
	slot, err := u.transition(ctx, id, entity.SlotStatusAvailable, entity.AuditActionSlotUnblock)
	if err != nil {
		return nil, err
	}
	u.availability.Increment(ctx, slot.WorkingHoursID)
	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) BookSlot(ctx context.Context, id uuid.UUID) (*dto.SlotResponse, error) {
	slot, err := u.transition(ctx, id, entity.SlotStatusBooked, entity.AuditActionSlotBook)
	if err != nil {
		return nil, err
	}
	u.availability.Decrement(ctx, slot.WorkingHoursID)
	return converter.SlotToResponse(slot), nil
}

// transition moves one slot to the target status. The precondition and the
// write are a single conditional UPDATE, so two concurrent callers racing for
// the same slot resolve to exactly one winner; the loser sees the transition
// error, not a lost update.
func (u *slotUsecase) transition(ctx context.Context, id uuid.UUID, target entity.SlotStatus, action string) (*entity.Slot, error) {
	required, err := entity.TransitionSource(target)
	if err != nil {
		return nil, err
	}

	var slot *entity.Slot
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		slot, err = u.slotRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if slot == nil {
			return ErrSlotNotFound
		}

		rows, err := u.slotRepo.UpdateStatusConditional(tx, id, required, target)
		if err != nil {
			return err
		}
		if rows == 0 {
			return entity.ErrInvalidSlotTransition
		}

		oldStatus := slot.Status
		slot.Status = target

		return u.auditService.LogUpdate(tx, action, "slot", id.String(),
			map[string]interface{}{"status": string(oldStatus)},
			map[string]interface{}{"status": string(target)})
	})
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) && !errors.Is(err, entity.ErrInvalidSlotTransition) {
			u.log.Warnf("Failed to transition slot %s to %s: %+v", id, target, err)
		}
		return nil, err
	}
	return slot, nil
}
