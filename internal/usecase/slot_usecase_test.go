package usecase

import (
	"context"
	"testing"
	"time"

	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
)

func createTestWindow(t *testing.T, env *testEnv, doctorID uuid.UUID, weekday int, start, end string) *dto.WorkingHoursResponse {
	t.Helper()
	resp, err := env.workingHours.CreateWorkingHours(context.Background(), doctorID, &dto.CreateWorkingHoursRequest{
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		t.Fatalf("create working hours: %v", err)
	}
	return resp
}

func firstSlot(t *testing.T, env *testEnv, workingHoursID uuid.UUID) *entity.Slot {
	t.Helper()
	var slot entity.Slot
	if err := env.db.Where("working_hours_id = ?", workingHoursID).Order("start_at ASC").First(&slot).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	return &slot
}

func TestListSlots_Pagination(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)
	window := createTestWindow(t, env, doctor.ID, 1, "08:00", "10:00")

	page, err := env.slots.ListSlots(context.Background(), &entity.SlotFilter{WorkingHoursID: &window.ID}, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page.Items))
	}
	if page.TotalElements != 16 {
		t.Fatalf("expected 16 total, got %d", page.TotalElements)
	}
	if page.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
	}

	// Ordered by start time.
	for i := 1; i < len(page.Items); i++ {
		if !page.Items[i-1].StartAt.Before(page.Items[i].StartAt) {
			t.Fatalf("items not ordered by start_at at index %d", i)
		}
	}

	// A page past the end is echoed back with empty items.
	past, err := env.slots.ListSlots(context.Background(), &entity.SlotFilter{WorkingHoursID: &window.ID}, 9, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(past.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(past.Items))
	}
	if past.Page != 9 {
		t.Fatalf("expected page 9 echoed, got %d", past.Page)
	}
	if past.TotalElements != 16 {
		t.Fatalf("expected 16 total, got %d", past.TotalElements)
	}
}

func TestListSlots_InvalidPagination(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.slots.ListSlots(context.Background(), nil, -1, 10); err != ErrInvalidPagination {
		t.Fatalf("expected ErrInvalidPagination, got %v", err)
	}
	if _, err := env.slots.ListSlots(context.Background(), nil, 0, 0); err != ErrInvalidPagination {
		t.Fatalf("expected ErrInvalidPagination, got %v", err)
	}
}

func TestListSlots_StatusFilter(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)
	window := createTestWindow(t, env, doctor.ID, 1, "08:00", "09:00")

	slot := firstSlot(t, env, window.ID)
	if _, err := env.slots.BookSlot(context.Background(), slot.ID); err != nil {
		t.Fatalf("book slot: %v", err)
	}

	booked := entity.SlotStatusBooked
	page, err := env.slots.ListSlots(context.Background(), &entity.SlotFilter{
		WorkingHoursID: &window.ID,
		Status:         &booked,
	}, 0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 1 {
		t.Fatalf("expected 1 booked slot, got %d", page.TotalElements)
	}
	if page.Items[0].ID != slot.ID {
		t.Fatalf("unexpected slot in filter result")
	}
}

func TestListSlots_DoctorAndDateFilter(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)
	other := createTestDoctor(t, env.db)
	window := createTestWindow(t, env, doctor.ID, 1, "08:00", "10:00")
	createTestWindow(t, env, other.ID, 1, "08:00", "10:00")

	page, err := env.slots.ListSlots(context.Background(), &entity.SlotFilter{DoctorID: &doctor.ID}, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 16 {
		t.Fatalf("expected 16 slots for the doctor, got %d", page.TotalElements)
	}

	// Bounding both ends to the first occurrence's date keeps exactly that
	// day's slots.
	slot := firstSlot(t, env, window.ID)
	day := time.Date(slot.StartAt.Year(), slot.StartAt.Month(), slot.StartAt.Day(), 0, 0, 0, 0, time.UTC)
	page, err = env.slots.ListSlots(context.Background(), &entity.SlotFilter{
		DoctorID: &doctor.ID,
		DateFrom: &day,
		DateTo:   &day,
	}, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 4 {
		t.Fatalf("expected 4 slots on the first day, got %d", page.TotalElements)
	}
}

func TestGetSlot(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)
	window := createTestWindow(t, env, doctor.ID, 1, "08:00", "09:00")
	slot := firstSlot(t, env, window.ID)

	resp, err := env.slots.GetSlot(context.Background(), slot.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != slot.ID || resp.WorkingHoursID != window.ID {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Status != string(entity.SlotStatusAvailable) {
		t.Fatalf("expected available, got %q", resp.Status)
	}

	if _, err := env.slots.GetSlot(context.Background(), uuid.New()); err != ErrSlotNotFound {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestBlockUnblockSlot(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)
	window := createTestWindow(t, env, doctor.ID, 1, "08:00", "09:00")
	slot := firstSlot(t, env, window.ID)

	blocked, err := env.slots.BlockSlot(context.Background(), slot.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocked.Status != string(entity.SlotStatusBlocked) {
		t.Fatalf("expected blocked, got %q", blocked.Status)
	}

	// Blocking twice is rejected.
	if _, err := env.slots.BlockSlot(context.Background(), slot.ID); err != entity.ErrInvalidSlotTransition {
		t.Fatalf("expected ErrInvalidSlotTransition, got %v", err)
	}

	unblocked, err := env.slots.UnblockSlot(context.Background(), slot.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unblocked.Status != string(entity.SlotStatusAvailable) {
		t.Fatalf("expected available, got %q", unblocked.Status)
	}

	// Unblocking an available slot is rejected.
	if _, err := env.slots.UnblockSlot(context.Background(), slot.ID); err != entity.ErrInvalidSlotTransition {
		t.Fatalf("expected ErrInvalidSlotTransition, got %v", err)
	}
}

func TestBookSlot(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)
	window := createTestWindow(t, env, doctor.ID, 1, "08:00", "09:00")
	slot := firstSlot(t, env, window.ID)

	booked, err := env.slots.BookSlot(context.Background(), slot.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booked.Status != string(entity.SlotStatusBooked) {
		t.Fatalf("expected booked, got %q", booked.Status)
	}

	// The second booking attempt for the same slot loses.
	if _, err := env.slots.BookSlot(context.Background(), slot.ID); err != entity.ErrInvalidSlotTransition {
		t.Fatalf("expected ErrInvalidSlotTransition, got %v", err)
	}

	// Booked is terminal: neither block nor unblock applies.
	if _, err := env.slots.BlockSlot(context.Background(), slot.ID); err != entity.ErrInvalidSlotTransition {
		t.Fatalf("expected ErrInvalidSlotTransition on block, got %v", err)
	}
	if _, err := env.slots.UnblockSlot(context.Background(), slot.ID); err != entity.ErrInvalidSlotTransition {
		t.Fatalf("expected ErrInvalidSlotTransition on unblock, got %v", err)
	}

	var audits int64
	if err := env.db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionSlotBook).Count(&audits).Error; err != nil {
		t.Fatalf("count audit logs: %v", err)
	}
	if audits != 1 {
		t.Fatalf("expected 1 booking audit entry, got %d", audits)
	}
}

func TestBookSlot_NotFound(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.slots.BookSlot(context.Background(), uuid.New()); err != ErrSlotNotFound {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}

// The one-winner guarantee for concurrent transitions rests on the
// conditional status update: whichever writer matched the expected status
// flips the row, every later writer matches zero rows.
func TestUpdateStatusConditional_SecondWriterMatchesNothing(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)
	window := createTestWindow(t, env, doctor.ID, 1, "08:00", "10:00")
	slot := firstSlot(t, env, window.ID)

	rows, err := env.slotRepo.UpdateStatusConditional(env.db, slot.ID, entity.SlotStatusAvailable, entity.SlotStatusBooked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row changed, got %d", rows)
	}

	rows, err = env.slotRepo.UpdateStatusConditional(env.db, slot.ID, entity.SlotStatusAvailable, entity.SlotStatusBooked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows for the losing writer, got %d", rows)
	}

	var after entity.Slot
	if err := env.db.Where("id = ?", slot.ID).First(&after).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if after.Status != entity.SlotStatusBooked {
		t.Fatalf("expected status booked exactly once, got %q", after.Status)
	}
}
