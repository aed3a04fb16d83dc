package usecase

import (
	"context"
	"testing"

	"doctor-provider/internal/domain/entity"
	repoImpl "doctor-provider/internal/repository"
)

func TestListCities(t *testing.T) {
	db := setupTestDB(t)
	uc := NewCityUsecase(db, testLogger(), repoImpl.NewCityRepository())

	for _, city := range []*entity.City{
		{Name: "Berlin", ZipCode: "10115"},
		{Name: "Hamburg", ZipCode: "20095"},
		{Name: "München", ZipCode: "80331"},
	} {
		if err := db.Create(city).Error; err != nil {
			t.Fatalf("create city: %v", err)
		}
	}

	page, err := uc.ListCities(context.Background(), "", "", 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 3 {
		t.Fatalf("expected 3 cities, got %d", page.TotalElements)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items on page, got %d", len(page.Items))
	}
	if page.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
	}

	page, err = uc.ListCities(context.Background(), "ham", "", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 1 || page.Items[0].Name != "Hamburg" {
		t.Fatalf("unexpected name filter result: %+v", page.Items)
	}

	page, err = uc.ListCities(context.Background(), "", "10115", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 1 || page.Items[0].Name != "Berlin" {
		t.Fatalf("unexpected zip filter result: %+v", page.Items)
	}

	if _, err := uc.ListCities(context.Background(), "", "", 0, 0); err != ErrInvalidPagination {
		t.Fatalf("expected ErrInvalidPagination, got %v", err)
	}
}
