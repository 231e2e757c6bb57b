package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"medicare/internal/models"
	"medicare/internal/response"
	"medicare/internal/storage"
)

type CreatePrescriptionRequest struct {
	PatientID        *uint    `json:"patient_id"`
	AppointmentID    *uint    `json:"appointment_id"`
	PatientName      string   `json:"patient_name" binding:"required" example:"Maria Garcia"`
	Age              *int     `json:"age" binding:"required,min=0,max=150" example:"34"`
	Diagnosis        string   `json:"diagnosis" binding:"required" example:"Migraine"`
	Medicines        []string `json:"medicines" binding:"required,min=1,dive,required"`
	CareInstructions string   `json:"care_instructions"`
	TestsRecommended []string `json:"tests_recommended"`
}

type PrescriptionResponse struct {
	ID               uint     `json:"id"`
	DoctorID         uint     `json:"doctor_id"`
	PatientID        *uint    `json:"patient_id,omitempty"`
	AppointmentID    *uint    `json:"appointment_id,omitempty"`
	PatientName      string   `json:"patient_name"`
	Age              int      `json:"age"`
	Diagnosis        string   `json:"diagnosis"`
	Medicines        []string `json:"medicines"`
	CareInstructions string   `json:"care_instructions"`
	TestsRecommended []string `json:"tests_recommended"`
	IsActive         bool     `json:"is_active"`
	CreatedAt        string   `json:"created_at"`
}

func splitNonEmpty(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toPrescriptionResponse(rx models.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:               rx.ID,
		DoctorID:         rx.DoctorID,
		PatientID:        rx.PatientID,
		AppointmentID:    rx.AppointmentID,
		PatientName:      rx.PatientName,
		Age:              rx.Age,
		Diagnosis:        rx.Diagnosis,
		Medicines:        splitNonEmpty(rx.Medicines, "\n"),
		CareInstructions: rx.CareInstructions,
		TestsRecommended: splitNonEmpty(rx.TestsRecommended, ","),
		IsActive:         rx.IsActive,
		CreatedAt:        rx.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) listPrescriptions(c *gin.Context, filter storage.PrescriptionFilter) {
	rxs, err := h.store.ListPrescriptions(c.Request.Context(), filter)
	if err != nil {
		h.dbError(c, "Failed to load prescriptions", err)
		return
	}
	out := make([]PrescriptionResponse, 0, len(rxs))
	for _, rx := range rxs {
		out = append(out, toPrescriptionResponse(rx))
	}
	c.JSON(http.StatusOK, out)
}

// GetDoctorPrescriptionsHandler godoc
// @Summary		Prescriptions written by the doctor
// @Tags			prescriptions
// @Produce		json
// @Security		BearerAuth
// @Param			search	query		string	false	"Patient name search"
// @Success		200		{array}		PrescriptionResponse
// @Failure		500		{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/doctor/prescriptions [get]
func (h *Handler) GetDoctorPrescriptionsHandler(c *gin.Context) {
	h.listPrescriptions(c, storage.PrescriptionFilter{
		DoctorID: currentUserID(c),
		Search:   strings.TrimSpace(c.Query("search")),
	})
}

// GetPatientPrescriptionsHandler godoc
// @Summary		My prescriptions
// @Tags			prescriptions
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		PrescriptionResponse
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/prescriptions [get]
func (h *Handler) GetPatientPrescriptionsHandler(c *gin.Context) {
	h.listPrescriptions(c, storage.PrescriptionFilter{PatientID: currentUserID(c)})
}

// CreatePrescriptionHandler godoc
// @Summary		Write a prescription
// @Tags			prescriptions
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			prescription	body		CreatePrescriptionRequest	true	"Prescription"
// @Success		201				{object}	PrescriptionResponse
// @Failure		400				{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		404				{object}	response.ErrorResponse	"APPOINTMENT_NOT_FOUND or PATIENT_NOT_FOUND"
// @Failure		500				{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/doctor/prescriptions [post]
func (h *Handler) CreatePrescriptionHandler(c *gin.Context) {
	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	medicines := make([]string, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		// stored one per line, so inner line breaks are folded
		m = strings.Join(strings.Fields(m), " ")
		if m == "" {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Medicines must not be blank",
			})
			return
		}
		medicines = append(medicines, m)
	}
	tests := make([]string, 0, len(req.TestsRecommended))
	for _, t := range req.TestsRecommended {
		if t = strings.TrimSpace(t); t != "" {
			tests = append(tests, t)
		}
	}

	ctx := c.Request.Context()
	doctorID := currentUserID(c)
	patientID, ok := h.prescriptionPatient(c, doctorID, req)
	if !ok {
		return
	}

	rx := &models.Prescription{
		DoctorID:         doctorID,
		PatientID:        patientID,
		AppointmentID:    req.AppointmentID,
		PatientName:      strings.TrimSpace(req.PatientName),
		Age:              *req.Age,
		Diagnosis:        req.Diagnosis,
		Medicines:        strings.Join(medicines, "\n"),
		CareInstructions: req.CareInstructions,
		TestsRecommended: strings.Join(tests, ","),
		IsActive:         true,
	}
	if err := h.store.CreatePrescription(ctx, rx); err != nil {
		h.dbError(c, "Failed to save prescription", err)
		return
	}

	h.log.Info().Uint("prescription_id", rx.ID).Uint("doctor_id", rx.DoctorID).Msg("prescription written")
	c.JSON(http.StatusCreated, toPrescriptionResponse(*rx))
}

// prescriptionPatient resolves the patient a prescription is linked to. A
// linked appointment must belong to the doctor and fixes the patient; a bare
// patient_id must name a patient account. It writes the error response and
// reports false when the links do not check out.
func (h *Handler) prescriptionPatient(c *gin.Context, doctorID uint, req CreatePrescriptionRequest) (*uint, bool) {
	ctx := c.Request.Context()

	if req.AppointmentID != nil {
		appt, err := h.store.AppointmentByID(ctx, *req.AppointmentID)
		if errors.Is(err, storage.ErrNotFound) || (err == nil && appt.DoctorID != doctorID) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "APPOINTMENT_NOT_FOUND",
				Message: "Appointment not found",
			})
			return nil, false
		}
		if err != nil {
			h.dbError(c, "Failed to load appointment", err)
			return nil, false
		}
		if req.PatientID != nil && *req.PatientID != appt.PatientID {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "patient_id does not match the appointment",
			})
			return nil, false
		}
		patientID := appt.PatientID
		return &patientID, true
	}

	if req.PatientID == nil {
		return nil, true
	}
	patient, err := h.store.UserByID(ctx, *req.PatientID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && patient.Role != models.RolePatient) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "PATIENT_NOT_FOUND",
			Message: "Patient not found",
		})
		return nil, false
	}
	if err != nil {
		h.dbError(c, "Failed to load patient", err)
		return nil, false
	}
	return req.PatientID, true
}
