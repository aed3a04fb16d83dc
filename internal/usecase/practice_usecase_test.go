package usecase

import (
	"context"
	"testing"

	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
	repoImpl "doctor-provider/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newPracticeUsecaseEnv(t *testing.T) (*gorm.DB, PracticeUsecase) {
	t.Helper()
	db := setupTestDB(t)
	uc := NewPracticeUsecase(db, testLogger(),
		repoImpl.NewPracticeRepository(),
		repoImpl.NewCityRepository())
	return db, uc
}

func TestCreatePractice(t *testing.T) {
	db, uc := newPracticeUsecaseEnv(t)
	city := &entity.City{Name: "Hamburg", ZipCode: "20095"}
	if err := db.Create(city).Error; err != nil {
		t.Fatalf("create city: %v", err)
	}

	practice, err := uc.CreatePractice(context.Background(), &dto.CreatePracticeRequest{
		Name:   "Hafenpraxis",
		Street: "Deichstraße",
		CityID: city.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if practice.CityID != city.ID {
		t.Fatalf("unexpected city id")
	}

	if _, err := uc.CreatePractice(context.Background(), &dto.CreatePracticeRequest{
		Name:   "Ghost",
		CityID: uuid.New(),
	}); err != ErrCityNotFound {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestListPractices_FilterByCityAndName(t *testing.T) {
	db, uc := newPracticeUsecaseEnv(t)
	berlin := &entity.City{Name: "Berlin", ZipCode: "10115"}
	hamburg := &entity.City{Name: "Hamburg", ZipCode: "20095"}
	for _, city := range []*entity.City{berlin, hamburg} {
		if err := db.Create(city).Error; err != nil {
			t.Fatalf("create city: %v", err)
		}
	}
	for _, practice := range []*entity.Practice{
		{Name: "Praxis Mitte", CityID: berlin.ID},
		{Name: "Praxis Nord", CityID: hamburg.ID},
	} {
		if err := db.Omit("City").Create(practice).Error; err != nil {
			t.Fatalf("create practice: %v", err)
		}
	}

	page, err := uc.ListPractices(context.Background(), &berlin.ID, "", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 1 || page.Items[0].Name != "Praxis Mitte" {
		t.Fatalf("unexpected city filter result: %+v", page.Items)
	}

	page, err = uc.ListPractices(context.Background(), nil, "nord", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 1 || page.Items[0].Name != "Praxis Nord" {
		t.Fatalf("unexpected name filter result: %+v", page.Items)
	}
}

func TestUpdatePractice(t *testing.T) {
	db, uc := newPracticeUsecaseEnv(t)
	city := &entity.City{Name: "Berlin", ZipCode: "10115"}
	if err := db.Create(city).Error; err != nil {
		t.Fatalf("create city: %v", err)
	}

	practice, err := uc.CreatePractice(context.Background(), &dto.CreatePracticeRequest{
		Name:   "Praxis Alt",
		CityID: city.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.UpdatePractice(context.Background(), practice.ID, &dto.UpdatePracticeRequest{
		Name:   "Praxis Neu",
		CityID: city.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Praxis Neu" {
		t.Fatalf("expected renamed practice, got %q", updated.Name)
	}

	if _, err := uc.UpdatePractice(context.Background(), uuid.New(), &dto.UpdatePracticeRequest{
		Name:   "Ghost",
		CityID: city.ID,
	}); err != ErrPracticeNotFound {
		t.Fatalf("expected ErrPracticeNotFound, got %v", err)
	}
}

func TestDeletePractice(t *testing.T) {
	db, uc := newPracticeUsecaseEnv(t)
	city := &entity.City{Name: "Berlin", ZipCode: "10115"}
	if err := db.Create(city).Error; err != nil {
		t.Fatalf("create city: %v", err)
	}
	practice, err := uc.CreatePractice(context.Background(), &dto.CreatePracticeRequest{
		Name:   "Praxis Mitte",
		CityID: city.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeletePractice(context.Background(), practice.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.DeletePractice(context.Background(), practice.ID); err != ErrPracticeNotFound {
		t.Fatalf("expected ErrPracticeNotFound, got %v", err)
	}
}
