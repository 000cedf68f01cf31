package models

import "time"

// WorkingHours is one weekday of a barber's recurring schedule.
// Weekday runs 1 (Sunday) to 7 (Saturday).
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_working_hours_barber_day" json:"barber_id"`
	Weekday  int  `gorm:"uniqueIndex:idx_working_hours_barber_day" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
