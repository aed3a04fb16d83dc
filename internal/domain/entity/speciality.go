package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Speciality struct {
	ID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Type SpecialityType `gorm:"type:varchar(50);not null;uniqueIndex" json:"type"`
}

func (Speciality) TableName() string {
	return "specialities"
}

func (s *Speciality) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
