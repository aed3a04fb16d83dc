package usecase

import (
	"context"
	"testing"

	"doctor-provider/internal/domain/entity"
	repoImpl "doctor-provider/internal/repository"
)

func TestListSpecialities(t *testing.T) {
	db := setupTestDB(t)
	uc := NewSpecialityUsecase(db, testLogger(), repoImpl.NewSpecialityRepository())

	for _, specialityType := range entity.AllSpecialityTypes {
		if err := db.Create(&entity.Speciality{Type: specialityType}).Error; err != nil {
			t.Fatalf("create speciality: %v", err)
		}
	}

	list, err := uc.ListSpecialities(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != len(entity.AllSpecialityTypes) {
		t.Fatalf("expected %d specialities, got %d", len(entity.AllSpecialityTypes), list.Total)
	}
	// Ordered by type.
	for i := 1; i < len(list.Specialities); i++ {
		if list.Specialities[i-1].Type > list.Specialities[i].Type {
			t.Fatalf("specialities not ordered at index %d", i)
		}
	}
}
