package usecase

import (
	"io"
	"testing"
	"time"

	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/domain/repository"
	repoImpl "doctor-provider/internal/repository"
	"doctor-provider/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDDL = []string{
	`CREATE TABLE cities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		zip_code TEXT NOT NULL
	)`,
	`CREATE TABLE practices (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		street TEXT,
		house_number TEXT,
		phone TEXT,
		email TEXT,
		postal_code TEXT,
		city_id TEXT NOT NULL
	)`,
	`CREATE TABLE specialities (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE doctors (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		practice_id TEXT
	)`,
	`CREATE TABLE doctor_specialities (
		doctor_id TEXT NOT NULL,
		speciality_id TEXT NOT NULL,
		PRIMARY KEY (doctor_id, speciality_id)
	)`,
	`CREATE TABLE working_hours (
		id TEXT PRIMARY KEY,
		doctor_id TEXT NOT NULL,
		weekday INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL
	)`,
	`CREATE TABLE slots (
		id TEXT PRIMARY KEY,
		working_hours_id TEXT NOT NULL,
		start_at DATETIME NOT NULL,
		end_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'available'
	)`,
	`CREATE TABLE audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		metadata TEXT,
		created_at DATETIME
	)`,
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pool connection would see a separate empty in-memory DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range testDDL {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func createTestDoctor(t *testing.T, db *gorm.DB) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{FirstName: "Anna", LastName: "Schmidt"}
	if err := db.Omit("Practice", "Specialities").Create(doctor).Error; err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return doctor
}

// testEnv wires the full usecase stack against an in-memory database with
// the Redis mirror disabled.
type testEnv struct {
	db           *gorm.DB
	log          *logrus.Logger
	slotRepo     repository.SlotRepository
	whRepo       repository.WorkingHoursRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	availability *service.AvailabilityService
	workingHours WorkingHoursUsecase
	slots        SlotUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	log := testLogger()

	slotRepo := repoImpl.NewSlotRepository()
	whRepo := repoImpl.NewWorkingHoursRepository()
	doctorRepo := repoImpl.NewDoctorRepository()
	auditRepo := repoImpl.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditRepo)
	availability := service.NewAvailabilityService(db, nil, log, slotRepo)

	return &testEnv{
		db:           db,
		log:          log,
		slotRepo:     slotRepo,
		whRepo:       whRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		availability: availability,
		workingHours: NewWorkingHoursUsecase(db, log, whRepo, slotRepo, doctorRepo,
			auditService, availability, service.DefaultHorizonWeeks, service.DefaultSlotDuration, time.UTC),
		slots: NewSlotUsecase(db, log, slotRepo, auditService, availability),
	}
}
