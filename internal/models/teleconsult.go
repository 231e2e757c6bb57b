package models

import "gorm.io/gorm"

type TeleConsultStatus string

const (
	TeleConsultScheduled  TeleConsultStatus = "scheduled"
	TeleConsultInProgress TeleConsultStatus = "in_progress"
	TeleConsultCompleted  TeleConsultStatus = "completed"
)

type TeleConsultation struct {
	gorm.Model
	DoctorID    uint              `gorm:"index;not null"`
	PatientName string            `gorm:"not null"`
	Date        string            `gorm:"type:varchar(10);index;not null"` // YYYY-MM-DD
	Time        string            `gorm:"not null"`
	MeetingLink string            `gorm:"not null"`
	Status      TeleConsultStatus `gorm:"type:varchar(16);not null;default:'scheduled'"`
}
