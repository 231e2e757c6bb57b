package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medicare/internal/models"
	"medicare/internal/response"
	"medicare/internal/storage"
)

type CreateAppointmentRequest struct {
	DoctorID        uint   `json:"doctor_id" binding:"required"`
	Date            string `json:"date" binding:"required" example:"2026-10-20"`
	Time            string `json:"time" binding:"required" example:"09:30 AM"`
	AppointmentType string `json:"appointment_type" binding:"omitempty,oneof=in_person tele_consult"`
	Complaint       string `json:"complaint"`
	RiskLevel       string `json:"risk_level" binding:"omitempty,oneof=low medium high"`
}

type AppointmentResponse struct {
	ID              uint    `json:"id"`
	PatientID       uint    `json:"patient_id"`
	PatientName     string  `json:"patient_name"`
	DoctorID        uint    `json:"doctor_id"`
	DoctorName      string  `json:"doctor_name"`
	Date            string  `json:"date" example:"2026-10-20"`
	Time            string  `json:"time" example:"09:30 AM"`
	AppointmentType string  `json:"appointment_type" example:"in_person"`
	Status          string  `json:"status" example:"scheduled"`
	Complaint       string  `json:"complaint"`
	RiskLevel       string  `json:"risk_level" example:"low"`
	Notes           string  `json:"notes"`
	CommitmentFee   float64 `json:"commitment_fee"`
	CreatedAt       string  `json:"created_at"`
}

func toAppointmentResponse(a models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		PatientName:     a.Patient.FullName,
		DoctorID:        a.DoctorID,
		DoctorName:      a.Doctor.FullName,
		Date:            a.AppointmentDate,
		Time:            a.ScheduledTime,
		AppointmentType: string(a.AppointmentType),
		Status:          string(a.Status),
		Complaint:       a.Complaint,
		RiskLevel:       a.RiskLevel,
		Notes:           a.Notes,
		CommitmentFee:   a.CommitmentFee,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}

// open reports whether the appointment can still be queued or cancelled.
func open(status models.AppointmentStatus) bool {
	return status == models.AppointmentScheduled || status == models.AppointmentConfirmed
}

// CreateAppointmentHandler godoc
// @Summary		Book an appointment
// @Description	Books a visit with a doctor. The date must be YYYY-MM-DD and not in the past. The commitment fee is recorded from the doctor's consultation fee and never charged.
// @Tags			appointments
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			appointment	body		CreateAppointmentRequest	true	"Booking"
// @Success		201			{object}	AppointmentResponse
// @Failure		400			{object}	response.ErrorResponse	"VALIDATION_ERROR or INVALID_DATE"
// @Failure		403			{object}	response.ErrorResponse	"FORBIDDEN_ROLE"
// @Failure		404			{object}	response.ErrorResponse	"DOCTOR_NOT_FOUND"
// @Failure		500			{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/appointments [post]
func (h *Handler) CreateAppointmentHandler(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	day, err := parseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_DATE",
			Message: err.Error(),
		})
		return
	}
	if day.Before(h.today()) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_DATE",
			Message: "Appointment date cannot be in the past",
		})
		return
	}

	ctx := c.Request.Context()
	doctor, err := h.store.DoctorByUserID(ctx, req.DoctorID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "DOCTOR_NOT_FOUND",
			Message: "Doctor not found",
		})
		return
	}
	if err != nil {
		h.dbError(c, "Failed to load doctor", err)
		return
	}

	apptType := models.AppointmentType(req.AppointmentType)
	if apptType == "" {
		apptType = models.AppointmentInPerson
	}
	risk := req.RiskLevel
	if risk == "" {
		risk = "low"
	}

	appt := &models.Appointment{
		PatientID:       currentUserID(c),
		DoctorID:        doctor.UserID,
		AppointmentDate: req.Date,
		ScheduledTime:   req.Time,
		AppointmentType: apptType,
		Status:          models.AppointmentScheduled,
		Complaint:       req.Complaint,
		RiskLevel:       risk,
		CommitmentFee:   doctor.ConsultationFee,
	}
	if err := h.store.CreateAppointment(ctx, appt); err != nil {
		h.dbError(c, "Failed to create appointment", err)
		return
	}

	created, err := h.store.AppointmentByID(ctx, appt.ID)
	if err != nil {
		h.dbError(c, "Failed to load appointment", err)
		return
	}

	h.log.Info().Uint("appointment_id", appt.ID).Uint("doctor_id", doctor.UserID).Msg("appointment booked")
	c.JSON(http.StatusCreated, toAppointmentResponse(*created))
}

// GetAppointmentsHandler godoc
// @Summary		List appointments
// @Description	Patients see their bookings, doctors see the appointments booked with them
// @Tags			appointments
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		AppointmentResponse
// @Failure		401	{object}	response.ErrorResponse	"NO_AUTH_HEADER or INVALID_TOKEN"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/appointments [get]
func (h *Handler) GetAppointmentsHandler(c *gin.Context) {
	filter := storage.AppointmentFilter{PatientID: currentUserID(c)}
	if currentRole(c) == models.RoleDoctor {
		filter = storage.AppointmentFilter{DoctorID: currentUserID(c)}
	}

	appts, err := h.store.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		h.dbError(c, "Failed to load appointments", err)
		return
	}

	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	c.JSON(http.StatusOK, out)
}

// CancelAppointmentHandler godoc
// @Summary		Cancel an appointment
// @Tags			appointments
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int	true	"Appointment id"
// @Success		200	{object}	response.SuccessResponse
// @Failure		400	{object}	response.ErrorResponse	"INVALID_APPOINTMENT_ID"
// @Failure		404	{object}	response.ErrorResponse	"APPOINTMENT_NOT_FOUND"
// @Failure		409	{object}	response.ErrorResponse	"INVALID_TRANSITION"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/appointments/{id}/cancel [post]
func (h *Handler) CancelAppointmentHandler(c *gin.Context) {
	id, ok := idParam(c, "id", "INVALID_APPOINTMENT_ID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	appt, err := h.store.AppointmentByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && appt.PatientID != currentUserID(c)) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "APPOINTMENT_NOT_FOUND",
			Message: "Appointment not found",
		})
		return
	}
	if err != nil {
		h.dbError(c, "Failed to load appointment", err)
		return
	}
	if !open(appt.Status) {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "INVALID_TRANSITION",
			Message: "Only scheduled or confirmed appointments can be cancelled",
			Details: string(appt.Status),
		})
		return
	}

	if err := h.store.UpdateAppointmentStatus(ctx, id, models.AppointmentCancelled); err != nil {
		h.dbError(c, "Failed to cancel appointment", err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{
		Message: "Appointment cancelled",
	})
}
