package models

import (
	"strings"

	"gorm.io/gorm"
)

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

type User struct {
	gorm.Model
	FullName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(16);index;not null"`
	Phone        string
}

type DoctorProfile struct {
	gorm.Model
	UserID          uint    `gorm:"uniqueIndex;not null"`
	User            User    `gorm:"foreignKey:UserID"`
	Qualifications  string  `gorm:"not null"`
	ExperienceYears int     `gorm:"not null;default:0"`
	Specializations string  `gorm:"not null;default:''"` // comma separated, e.g. "Cardiology,Internal Medicine"
	ConsultationFee float64 `gorm:"not null;default:0"`
	Bio             string
	IsAvailable     bool    `gorm:"default:true"`
	Rating          float64 `gorm:"default:0"`
	TotalReviews    int     `gorm:"default:0"`
}

func (d DoctorProfile) SpecializationList() []string {
	if d.Specializations == "" {
		return []string{}
	}
	parts := strings.Split(d.Specializations, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
