package usecase

import (
	"context"

	"doctor-provider/internal/converter"
	"doctor-provider/internal/delivery/dto"
	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, action string, page, size int) (*entity.Page[dto.AuditLogResponse], error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, action string, page, size int) (*entity.Page[dto.AuditLogResponse], error) {
	if page < 0 || size <= 0 {
		return nil, ErrInvalidPagination
	}

	logs, total, err := u.auditLogRepo.FindAllPaged(u.db.WithContext(ctx), action, page, size)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	result := entity.NewPage(converter.AuditLogsToResponses(logs), page, size, total)
	return &result, nil
}
