package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type VitalSnapshot struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	HeartRate     int     `json:"heart_rate"`
	BloodPressure string  `json:"blood_pressure"`
	SpO2          int     `json:"spo2"`
	Temperature   float64 `json:"temperature"`
}

type TimelineEvent struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Type        string `json:"type" enums:"appointment,lab,diagnosis,medication"`
	Description string `json:"description"`
	Doctor      string `json:"doctor,omitempty"`
	Facility    string `json:"facility,omitempty"`
	Tag         string `json:"tag,omitempty"`
}

type TimelineResponse struct {
	Vitals []VitalSnapshot `json:"vitals"`
	Events []TimelineEvent `json:"events"`
}

// Sample history until vitals are recorded by the clinic.
var sampleTimeline = TimelineResponse{
	Vitals: []VitalSnapshot{
		{Date: "2026-01-04", Time: "08:15 AM", HeartRate: 76, BloodPressure: "118/76", SpO2: 98, Temperature: 36.7},
		{Date: "2026-01-03", Time: "09:00 PM", HeartRate: 80, BloodPressure: "122/80", SpO2: 97, Temperature: 36.9},
		{Date: "2026-01-02", Time: "07:45 AM", HeartRate: 72, BloodPressure: "116/74", SpO2: 99, Temperature: 36.6},
	},
	Events: []TimelineEvent{
		{
			ID: 1, Date: "2025-12-20", Title: "Follow-up with Dr. Sarah Smith", Type: "appointment",
			Description: "Routine cardiology follow-up and medication review.",
			Doctor:      "Dr. Sarah Smith (Cardiologist)", Facility: "City Care Hospital, Nagpur", Tag: "Completed",
		},
		{
			ID: 2, Date: "2025-11-30", Title: "Lipid profile and ECG", Type: "lab",
			Description: "Lipid profile and resting ECG; results within normal limits.",
			Facility:    "City Care Diagnostics", Tag: "Normal",
		},
		{
			ID: 3, Date: "2025-10-10", Title: "Hypertension diagnosed", Type: "diagnosis",
			Description: "Stage 1 hypertension, lifestyle modification advised.",
			Doctor:      "Dr. Michael Brown (General Physician)", Facility: "Family Health Clinic", Tag: "Ongoing",
		},
		{
			ID: 4, Date: "2025-10-10", Title: "Amlodipine 5 mg started", Type: "medication",
			Description: "Once daily dose, to be taken in the evening.",
			Doctor:      "Dr. Michael Brown", Tag: "Active Rx",
		},
	},
}

// GetTimelineHandler godoc
// @Summary		Health timeline
// @Description	Recent vitals and medical history events
// @Tags			timeline
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	TimelineResponse
// @Router			/api/timeline [get]
func (h *Handler) GetTimelineHandler(c *gin.Context) {
	c.JSON(http.StatusOK, sampleTimeline)
}
