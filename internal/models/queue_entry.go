package models

import (
	"time"

	"gorm.io/gorm"
)

// QueueEntry is the stored mirror of one entry of a doctor's queue.
type QueueEntry struct {
	gorm.Model
	DoctorID        uint   `gorm:"index;not null"`
	EntryID         string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Position        int    `gorm:"index;not null"` // current position in the queue
	PatientID       uint
	AppointmentID   uint
	Name            string `gorm:"not null"`
	Complaint       string
	RiskLevel       string `gorm:"type:varchar(8);not null"`
	AppointmentType string `gorm:"type:varchar(16);not null"`
	ScheduledTime   string
	Phone           string
	Arrived         bool
	Status          string `gorm:"type:varchar(16);not null"`
}

// QueueSnapshot marks that a doctor's queue was saved at least once, so an
// emptied queue is told apart from one never stored.
type QueueSnapshot struct {
	DoctorID  uint `gorm:"primaryKey;autoIncrement:false"`
	UpdatedAt time.Time
}

// All returns every model the service migrates.
func All() []interface{} {
	return []interface{}{
		&User{}, &DoctorProfile{}, &Appointment{}, &Prescription{}, &TeleConsultation{}, &QueueEntry{}, &QueueSnapshot{},
	}
}
