package repository

import (
	"doctor-provider/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAllPaged(db *gorm.DB, action string, page, size int) ([]entity.AuditLog, int64, error)
}
