package models

import "time"

// Barber is the professional profile of a user working at a barbershop.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	BarbershopID uint       `gorm:"index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Specialty       string  `gorm:"size:100" json:"specialty"`
	YearsExperience int     `json:"years_experience"`
	Rating          float64 `gorm:"default:0" json:"rating"`
	TotalServices   int     `gorm:"default:0" json:"total_services"`
	Active          bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
