package queue

import (
	"fmt"
	"strings"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

type AppointmentType string

const (
	InPerson    AppointmentType = "in-person"
	TeleConsult AppointmentType = "tele-consult"
)

func (t AppointmentType) Valid() bool {
	return t == InPerson || t == TeleConsult
}

// Status is a display label. Completed entries leave the queue, so there is no
// completed status here.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in-progress"
)

// slotMinutes is the average consultation length used for estimated waits.
const slotMinutes = 15

// Entry is one patient's place in a doctor's queue for the day.
type Entry struct {
	ID              string          `json:"id"`
	Position        int             `json:"position"`
	PatientID       uint            `json:"patient_id,omitempty"`
	AppointmentID   uint            `json:"appointment_id,omitempty"`
	Name            string          `json:"name"`
	Complaint       string          `json:"complaint"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	AppointmentType AppointmentType `json:"appointment_type"`
	ScheduledTime   string          `json:"scheduled_time"`
	Phone           string          `json:"phone"`
	Arrived         bool            `json:"arrived"`
	Status          Status          `json:"status"`
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEntry)
	}
	if !e.RiskLevel.Valid() {
		return fmt.Errorf("%w: unknown risk level %q", ErrInvalidEntry, e.RiskLevel)
	}
	if !e.AppointmentType.Valid() {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidEntry, e.AppointmentType)
	}
	return nil
}

// EstimatedWait renders the expected wait for the entry from its position.
func (e Entry) EstimatedWait() string {
	if e.Position <= 1 {
		return "Now"
	}
	minutes := (e.Position - 1) * slotMinutes
	if minutes < 60 {
		return fmt.Sprintf("~%d min", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("~%d hr", minutes/60)
	}
	return fmt.Sprintf("~%d hr %d min", minutes/60, minutes%60)
}

// Actions tells the presentation layer which controls are legal for an entry
// in a queue of length n.
type Actions struct {
	CanMoveUp     bool `json:"can_move_up"`
	CanMoveDown   bool `json:"can_move_down"`
	CanPrioritize bool `json:"can_prioritize"`
}

func ActionsFor(e Entry, n int) Actions {
	return Actions{
		CanMoveUp:     e.Position > 1,
		CanMoveDown:   e.Position < n,
		CanPrioritize: e.RiskLevel == RiskHigh && e.Position > 1,
	}
}
