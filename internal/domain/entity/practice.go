package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Practice is a medical practice located in exactly one city.
type Practice struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null;index" json:"name"`
	Street      string    `gorm:"type:varchar(150)" json:"street"`
	HouseNumber string    `gorm:"type:varchar(20)" json:"house_number"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	Email       string    `gorm:"type:varchar(150)" json:"email"`
	PostalCode  string    `gorm:"type:varchar(10)" json:"postal_code"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index" json:"city_id"`

	// Navigation only, the domain reference is CityID.
	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (Practice) TableName() string {
	return "practices"
}

func (p *Practice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
