package repository

import (
	"doctor-provider/internal/domain/entity"
	domainRepo "doctor-provider/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindAllPaged(db *gorm.DB, action string, page, size int) ([]entity.AuditLog, int64, error) {
	query := db.Model(&entity.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []entity.AuditLog
	err := query.Order("created_at DESC, id DESC").Limit(size).Offset(page * size).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
