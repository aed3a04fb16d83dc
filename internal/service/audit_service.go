package service

import (
	"doctor-provider/internal/domain/entity"
	"doctor-provider/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(tx *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(tx *gorm.DB, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(tx *gorm.DB, action string, entityName string, entityID string, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(tx *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(tx, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(tx *gorm.DB, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(tx, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(tx *gorm.DB, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.write(tx, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) write(tx *gorm.DB, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}
