package service

import (
	"context"
	"fmt"
	"time"

	"doctor-provider/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis key prefix for per-window available slot counters
	RedisAvailableKeyPrefix = "slots:available:"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second

	// Batch size for the startup sync - process 500 windows at a time so the
	// pipeline never grows unbounded
	availabilitySyncBatch = 500
)

// AvailabilityService mirrors the AVAILABLE slot count of every working-hours
// window into Redis. The database stays the source of truth: every method is
// best-effort and a Redis failure must never fail the calling request.
// A nil redis client disables the cache entirely, reads then always fall
// back to the database.
type AvailabilityService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	slotRepo    repository.SlotRepository
}

func NewAvailabilityService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, slotRepo repository.SlotRepository) *AvailabilityService {
	return &AvailabilityService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		slotRepo:    slotRepo,
	}
}

func availableKey(workingHoursID uuid.UUID) string {
	return fmt.Sprintf("%s%s", RedisAvailableKeyPrefix, workingHoursID)
}

// SyncAllFromDB rebuilds every counter from the database in batches.
// Called once at startup.
func (s *AvailabilityService) SyncAllFromDB(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	var afterID *uuid.UUID
	synced := 0

	for {
		rows, err := s.slotRepo.CountAvailableGrouped(s.db.WithContext(ctx), availabilitySyncBatch, afterID)
		if err != nil {
			return fmt.Errorf("count available slots: %w", err)
		}
		if len(rows) == 0 {
			break
		}

		pipe := s.redisClient.Pipeline()
		for _, row := range rows {
			pipe.Set(ctx, availableKey(row.WorkingHoursID), row.Available, 0)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("sync availability batch: %w", err)
		}

		synced += len(rows)
		last := rows[len(rows)-1].WorkingHoursID
		afterID = &last
		if len(rows) < availabilitySyncBatch {
			break
		}
	}

	s.log.Infof("Availability cache synced for %d working-hours windows", synced)
	return nil
}

// SetAvailable overwrites the counter, used after slot generation.
func (s *AvailabilityService) SetAvailable(ctx context.Context, workingHoursID uuid.UUID, count int64) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := s.redisClient.Set(ctx, availableKey(workingHoursID), count, 0).Err(); err != nil {
		s.log.Warnf("Failed to set availability counter for %s: %+v", workingHoursID, err)
	}
}

// Decrement is called when a slot leaves AVAILABLE (book, block).
func (s *AvailabilityService) Decrement(ctx context.Context, workingHoursID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := s.redisClient.Decr(ctx, availableKey(workingHoursID)).Err(); err != nil {
		s.log.Warnf("Failed to decrement availability counter for %s: %+v", workingHoursID, err)
	}
}

// Increment is called when a slot returns to AVAILABLE (unblock).
func (s *AvailabilityService) Increment(ctx context.Context, workingHoursID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := s.redisClient.Incr(ctx, availableKey(workingHoursID)).Err(); err != nil {
		s.log.Warnf("Failed to increment availability counter for %s: %+v", workingHoursID, err)
	}
}

// Remove drops the counter when its working-hours window is deleted.
func (s *AvailabilityService) Remove(ctx context.Context, workingHoursID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := s.redisClient.Del(ctx, availableKey(workingHoursID)).Err(); err != nil {
		s.log.Warnf("Failed to remove availability counter for %s: %+v", workingHoursID, err)
	}
}

// GetAvailable reads the cached counter. ok is false on a miss or Redis
// failure; the caller falls back to the database.
func (s *AvailabilityService) GetAvailable(ctx context.Context, workingHoursID uuid.UUID) (count int64, ok bool) {
	if s.redisClient == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	count, err := s.redisClient.Get(ctx, availableKey(workingHoursID)).Int64()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read availability counter for %s: %+v", workingHoursID, err)
		}
		return 0, false
	}
	return count, true
}
