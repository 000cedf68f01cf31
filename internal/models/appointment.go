package models

import "time"

type AppointmentStatus struct {
	ID    uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name  string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:20" json:"color"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint   `gorm:"index:idx_appointments_barber_date" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date      time.Time `gorm:"type:date;index:idx_appointments_barber_date" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	StatusID uint              `gorm:"not null;default:1" json:"status_id"`
	Status   AppointmentStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"status"`

	PriceFinal float64 `json:"price_final"`
	Notes      string  `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
