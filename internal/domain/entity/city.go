package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type City struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"type:varchar(100);not null;index" json:"name"`
	ZipCode string    `gorm:"type:varchar(10);not null;index" json:"zip_code"`
}

func (City) TableName() string {
	return "cities"
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
