package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor optionally belongs to one practice and carries a set of
// specialities via the doctor_specialities junction table.
type Doctor struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName  string     `gorm:"type:varchar(100);not null;index" json:"first_name"`
	LastName   string     `gorm:"type:varchar(100);not null;index" json:"last_name"`
	PracticeID *uuid.UUID `gorm:"type:uuid;index" json:"practice_id,omitempty"`

	Practice     *Practice    `gorm:"foreignKey:PracticeID" json:"practice,omitempty"`
	Specialities []Speciality `gorm:"many2many:doctor_specialities" json:"specialities,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// SpecialityIDs returns the ids of the attached specialities.
func (d *Doctor) SpecialityIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(d.Specialities))
	for i, s := range d.Specialities {
		ids[i] = s.ID
	}
	return ids
}

// DoctorFilter is a domain-level filter for querying doctors.
// Used by the repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	FirstName    string     // substring match, case-insensitive
	LastName     string     // substring match, case-insensitive
	PracticeID   *uuid.UUID
	CityID       *uuid.UUID // requires join through practices
	SpecialityID *uuid.UUID // requires join through doctor_specialities
}
