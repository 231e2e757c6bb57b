package models

import "gorm.io/gorm"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInQueue    AppointmentStatus = "in_queue"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

type AppointmentType string

const (
	AppointmentInPerson    AppointmentType = "in_person"
	AppointmentTeleConsult AppointmentType = "tele_consult"
)

type Appointment struct {
	gorm.Model
	PatientID       uint              `gorm:"index;not null"`
	Patient         User              `gorm:"foreignKey:PatientID"`
	DoctorID        uint              `gorm:"index;not null"` // users.id of the doctor, not doctor_profiles.id
	Doctor          User              `gorm:"foreignKey:DoctorID"`
	AppointmentDate string            `gorm:"type:varchar(10);index;not null"` // YYYY-MM-DD
	ScheduledTime   string            `gorm:"not null"`
	AppointmentType AppointmentType   `gorm:"type:varchar(16);not null;default:'in_person'"`
	Status          AppointmentStatus `gorm:"type:varchar(16);index;not null;default:'scheduled'"`
	Complaint       string
	RiskLevel       string `gorm:"type:varchar(8);default:'low'"`
	Notes           string
	CommitmentFee   float64
}
