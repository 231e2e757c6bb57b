package models

import "gorm.io/gorm"

type Prescription struct {
	gorm.Model
	DoctorID         uint   `gorm:"index;not null"`
	PatientID        *uint  `gorm:"index"` // nil when the patient has no account
	AppointmentID    *uint  `gorm:"index"`
	PatientName      string `gorm:"index;not null"`
	Age              int    `gorm:"not null"`
	Diagnosis        string `gorm:"not null"`
	Medicines        string `gorm:"type:text;not null"` // one medicine per line
	CareInstructions string `gorm:"type:text"`
	TestsRecommended string // comma separated
	IsActive         bool   `gorm:"default:true"`
}
