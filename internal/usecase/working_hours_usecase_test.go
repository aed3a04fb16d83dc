package usecase

import (
	"context"
	"testing"

	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"

	"github.com/google/uuid"
)

func TestCreateWorkingHours_GeneratesSlots(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	resp, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday:   1,
		StartTime: "08:00",
		EndTime:   "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.DoctorID != doctor.ID {
		t.Fatalf("expected doctor id %s, got %s", doctor.ID, resp.DoctorID)
	}
	if resp.Weekday != 1 || resp.StartTime != "08:00" || resp.EndTime != "10:00" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// 4 slots of 30 minutes per occurrence, 4 weekly occurrences.
	var count int64
	if err := env.db.Model(&entity.Slot{}).Where("working_hours_id = ?", resp.ID).Count(&count).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if count != 16 {
		t.Fatalf("expected 16 slots, got %d", count)
	}

	var audits int64
	if err := env.db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionWorkingHoursCreate).Count(&audits).Error; err != nil {
		t.Fatalf("count audit logs: %v", err)
	}
	if audits != 1 {
		t.Fatalf("expected 1 audit entry, got %d", audits)
	}
}

func TestCreateWorkingHours_DoctorNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.workingHours.CreateWorkingHours(context.Background(), uuid.New(), &dto.CreateWorkingHoursRequest{
		Weekday:   1,
		StartTime: "08:00",
		EndTime:   "10:00",
	})
	if err != ErrDoctorNotFound {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestCreateWorkingHours_Validation(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	cases := []struct {
		name string
		req  dto.CreateWorkingHoursRequest
		want error
	}{
		{"weekday too high", dto.CreateWorkingHoursRequest{Weekday: 8, StartTime: "08:00", EndTime: "10:00"}, ErrInvalidWeekday},
		{"weekday zero", dto.CreateWorkingHoursRequest{Weekday: 0, StartTime: "08:00", EndTime: "10:00"}, ErrInvalidWeekday},
		{"bad format", dto.CreateWorkingHoursRequest{Weekday: 1, StartTime: "8 am", EndTime: "10:00"}, ErrInvalidTimeFormat},
		{"start after end", dto.CreateWorkingHoursRequest{Weekday: 1, StartTime: "12:00", EndTime: "10:00"}, ErrInvalidTimeRange},
		{"start equals end", dto.CreateWorkingHoursRequest{Weekday: 1, StartTime: "10:00", EndTime: "10:00"}, ErrInvalidTimeRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &c.req); err != c.want {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestCreateWorkingHours_OverlapRejected(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	_, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "09:00", EndTime: "12:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Contained in the existing window.
	_, err = env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "10:00", EndTime: "11:00",
	})
	if err != ErrOverlappingWorkingHours {
		t.Fatalf("expected ErrOverlappingWorkingHours, got %v", err)
	}

	// Straddling the start of the existing window.
	_, err = env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "09:30",
	})
	if err != ErrOverlappingWorkingHours {
		t.Fatalf("expected ErrOverlappingWorkingHours, got %v", err)
	}

	// Adjacent windows share no instant and are allowed.
	if _, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "12:00", EndTime: "14:00",
	}); err != nil {
		t.Fatalf("adjacent window rejected: %v", err)
	}

	// Same times on another weekday never overlap.
	if _, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 2, StartTime: "09:00", EndTime: "12:00",
	}); err != nil {
		t.Fatalf("other weekday rejected: %v", err)
	}
}

func TestCreateWorkingHours_NormalizesUnpaddedTimes(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	// An unpadded hour is valid input and must not trip the range check.
	resp, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "8:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StartTime != "08:00" || resp.EndTime != "10:00" {
		t.Fatalf("expected padded bounds 08:00-10:00, got %s-%s", resp.StartTime, resp.EndTime)
	}

	// The stored row carries the padded form.
	var stored entity.WorkingHours
	if err := env.db.Where("id = ?", resp.ID).First(&stored).Error; err != nil {
		t.Fatalf("load window: %v", err)
	}
	if stored.StartTime != "08:00" {
		t.Fatalf("expected stored start 08:00, got %q", stored.StartTime)
	}

	// A padded window conflicting with the normalized one is caught.
	_, err = env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "09:00",
	})
	if err != ErrOverlappingWorkingHours {
		t.Fatalf("expected ErrOverlappingWorkingHours, got %v", err)
	}

	// Updates normalize the same way.
	updated, err := env.workingHours.UpdateWorkingHours(context.Background(), resp.ID, &dto.UpdateWorkingHoursRequest{
		Weekday: 1, StartTime: "7:30", EndTime: "9:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.StartTime != "07:30" || updated.EndTime != "09:30" {
		t.Fatalf("expected padded bounds 07:30-09:30, got %s-%s", updated.StartTime, updated.EndTime)
	}
}

func TestUpdateWorkingHours_RegeneratesAvailableSlots(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	created, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := env.workingHours.UpdateWorkingHours(context.Background(), created.ID, &dto.UpdateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "09:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EndTime != "09:00" {
		t.Fatalf("expected end time 09:00, got %s", updated.EndTime)
	}

	// The shorter window fits 2 slots per occurrence instead of 4.
	var count int64
	if err := env.db.Model(&entity.Slot{}).Where("working_hours_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if count != 8 {
		t.Fatalf("expected 8 slots after update, got %d", count)
	}
}

func TestUpdateWorkingHours_PreservesBookedSlots(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	created, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var booked entity.Slot
	if err := env.db.Where("working_hours_id = ?", created.ID).Order("start_at ASC").First(&booked).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if err := env.db.Model(&entity.Slot{}).Where("id = ?", booked.ID).
		Update("status", entity.SlotStatusBooked).Error; err != nil {
		t.Fatalf("book slot: %v", err)
	}

	if _, err := env.workingHours.UpdateWorkingHours(context.Background(), created.ID, &dto.UpdateWorkingHoursRequest{
		Weekday: 3, StartTime: "14:00", EndTime: "15:00",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var after entity.Slot
	if err := env.db.Where("id = ?", booked.ID).First(&after).Error; err != nil {
		t.Fatalf("booked slot was deleted by the update: %v", err)
	}
	if after.Status != entity.SlotStatusBooked {
		t.Fatalf("expected booked slot to stay booked, got %q", after.Status)
	}

	var available int64
	if err := env.db.Model(&entity.Slot{}).
		Where("working_hours_id = ? AND status = ?", created.ID, entity.SlotStatusAvailable).
		Count(&available).Error; err != nil {
		t.Fatalf("count available: %v", err)
	}
	if available != 8 {
		t.Fatalf("expected 8 regenerated available slots, got %d", available)
	}
}

func TestUpdateWorkingHours_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.workingHours.UpdateWorkingHours(context.Background(), uuid.New(), &dto.UpdateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "10:00",
	})
	if err != ErrWorkingHoursNotFound {
		t.Fatalf("expected ErrWorkingHoursNotFound, got %v", err)
	}
}

func TestUpdateWorkingHours_DoesNotConflictWithItself(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	created, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := env.workingHours.UpdateWorkingHours(context.Background(), created.ID, &dto.UpdateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "10:00",
	}); err != nil {
		t.Fatalf("update to identical bounds rejected: %v", err)
	}
}

func TestDeleteWorkingHours_RemovesSlots(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	created, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := env.workingHours.DeleteWorkingHours(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	if err := env.db.Model(&entity.Slot{}).Where("working_hours_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 slots after delete, got %d", count)
	}

	if err := env.workingHours.DeleteWorkingHours(context.Background(), created.ID); err != ErrWorkingHoursNotFound {
		t.Fatalf("expected ErrWorkingHoursNotFound on second delete, got %v", err)
	}
}

func TestGetWorkingHoursByDoctor(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	for _, req := range []dto.CreateWorkingHoursRequest{
		{Weekday: 3, StartTime: "14:00", EndTime: "16:00"},
		{Weekday: 1, StartTime: "08:00", EndTime: "10:00"},
	} {
		if _, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := env.workingHours.GetWorkingHoursByDoctor(context.Background(), doctor.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("expected 2 windows, got %d", list.Total)
	}
	// Ordered by weekday.
	if list.WorkingHours[0].Weekday != 1 || list.WorkingHours[1].Weekday != 3 {
		t.Fatalf("unexpected order: %+v", list.WorkingHours)
	}

	if _, err := env.workingHours.GetWorkingHoursByDoctor(context.Background(), uuid.New()); err != ErrDoctorNotFound {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestGetDoctorAvailability_FallsBackToDatabase(t *testing.T) {
	env := newTestEnv(t)
	doctor := createTestDoctor(t, env.db)

	created, err := env.workingHours.CreateWorkingHours(context.Background(), doctor.ID, &dto.CreateWorkingHoursRequest{
		Weekday: 1, StartTime: "08:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	availability, err := env.workingHours.GetDoctorAvailability(context.Background(), doctor.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(availability.WorkingHours) != 1 {
		t.Fatalf("expected 1 window, got %d", len(availability.WorkingHours))
	}
	window := availability.WorkingHours[0]
	if window.WorkingHoursID != created.ID {
		t.Fatalf("unexpected window id")
	}
	if window.AvailableSlots != 16 {
		t.Fatalf("expected 16 available slots, got %d", window.AvailableSlots)
	}

	// Booking a slot reduces the reported count.
	var slot entity.Slot
	if err := env.db.Where("working_hours_id = ?", created.ID).First(&slot).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if _, err := env.slots.BookSlot(context.Background(), slot.ID); err != nil {
		t.Fatalf("book slot: %v", err)
	}

	availability, err = env.workingHours.GetDoctorAvailability(context.Background(), doctor.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if availability.WorkingHours[0].AvailableSlots != 15 {
		t.Fatalf("expected 15 available slots, got %d", availability.WorkingHours[0].AvailableSlots)
	}
}
