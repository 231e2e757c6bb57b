package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medicare/internal/models"
	"medicare/internal/response"
	"medicare/internal/storage"
)

type CreateTeleConsultRequest struct {
	PatientName string `json:"patient_name" binding:"required" example:"Linda Martinez"`
	Date        string `json:"date" binding:"required" example:"2026-10-20"`
	Time        string `json:"time" binding:"required" example:"10:00 AM"`
	MeetingLink string `json:"meeting_link" binding:"required,url" example:"https://meet.example.com/abc-defg-hij"`
}

type TeleConsultResponse struct {
	ID          uint   `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	MeetingLink string `json:"meeting_link"`
	Status      string `json:"status" example:"scheduled"`
}

func toTeleConsultResponse(tc models.TeleConsultation) TeleConsultResponse {
	return TeleConsultResponse{
		ID:          tc.ID,
		PatientName: tc.PatientName,
		Date:        tc.Date,
		Time:        tc.Time,
		MeetingLink: tc.MeetingLink,
		Status:      string(tc.Status),
	}
}

// teleConsultTransitions maps each action to the status it requires and the
// status it leads to.
var teleConsultTransitions = map[string]struct {
	from, to models.TeleConsultStatus
}{
	"start":    {models.TeleConsultScheduled, models.TeleConsultInProgress},
	"complete": {models.TeleConsultInProgress, models.TeleConsultCompleted},
}

// GetTeleConsultsHandler godoc
// @Summary		Tele-consultations
// @Tags			teleconsults
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		TeleConsultResponse
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/doctor/teleconsults [get]
func (h *Handler) GetTeleConsultsHandler(c *gin.Context) {
	tcs, err := h.store.ListTeleConsults(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.dbError(c, "Failed to load tele-consultations", err)
		return
	}
	out := make([]TeleConsultResponse, 0, len(tcs))
	for _, tc := range tcs {
		out = append(out, toTeleConsultResponse(tc))
	}
	c.JSON(http.StatusOK, out)
}

// CreateTeleConsultHandler godoc
// @Summary		Schedule a tele-consultation
// @Tags			teleconsults
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			teleconsult	body		CreateTeleConsultRequest	true	"Tele-consultation"
// @Success		201			{object}	TeleConsultResponse
// @Failure		400			{object}	response.ErrorResponse	"VALIDATION_ERROR or INVALID_DATE"
// @Failure		500			{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/doctor/teleconsults [post]
func (h *Handler) CreateTeleConsultHandler(c *gin.Context) {
	var req CreateTeleConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if _, err := parseDay(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_DATE",
			Message: err.Error(),
		})
		return
	}

	tc := &models.TeleConsultation{
		DoctorID:    currentUserID(c),
		PatientName: strings.TrimSpace(req.PatientName),
		Date:        req.Date,
		Time:        req.Time,
		MeetingLink: req.MeetingLink,
		Status:      models.TeleConsultScheduled,
	}
	if err := h.store.CreateTeleConsult(c.Request.Context(), tc); err != nil {
		h.dbError(c, "Failed to schedule tele-consultation", err)
		return
	}
	c.JSON(http.StatusCreated, toTeleConsultResponse(*tc))
}

// StartTeleConsultHandler godoc
// @Summary		Start a tele-consultation
// @Tags			teleconsults
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int	true	"Tele-consultation id"
// @Success		200	{object}	TeleConsultResponse
// @Failure		404	{object}	response.ErrorResponse	"TELECONSULT_NOT_FOUND"
// @Failure		409	{object}	response.ErrorResponse	"INVALID_TRANSITION"
// @Router			/api/doctor/teleconsults/{id}/start [post]
func (h *Handler) StartTeleConsultHandler(c *gin.Context) {
	h.transitionTeleConsult(c, "start")
}

// CompleteTeleConsultHandler godoc
// @Summary		Complete a tele-consultation
// @Tags			teleconsults
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int	true	"Tele-consultation id"
// @Success		200	{object}	TeleConsultResponse
// @Failure		404	{object}	response.ErrorResponse	"TELECONSULT_NOT_FOUND"
// @Failure		409	{object}	response.ErrorResponse	"INVALID_TRANSITION"
// @Router			/api/doctor/teleconsults/{id}/complete [post]
func (h *Handler) CompleteTeleConsultHandler(c *gin.Context) {
	h.transitionTeleConsult(c, "complete")
}

func (h *Handler) transitionTeleConsult(c *gin.Context, action string) {
	id, ok := idParam(c, "id", "INVALID_TELECONSULT_ID")
	if !ok {
		return
	}
	step := teleConsultTransitions[action]

	ctx := c.Request.Context()
	tc, err := h.store.TeleConsultByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && tc.DoctorID != currentUserID(c)) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "TELECONSULT_NOT_FOUND",
			Message: "Tele-consultation not found",
		})
		return
	}
	if err != nil {
		h.dbError(c, "Failed to load tele-consultation", err)
		return
	}
	if tc.Status != step.from {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "INVALID_TRANSITION",
			Message: "Cannot " + action + " a " + string(tc.Status) + " tele-consultation",
		})
		return
	}

	if err := h.store.UpdateTeleConsultStatus(ctx, id, step.to); err != nil {
		h.dbError(c, "Failed to update tele-consultation", err)
		return
	}
	tc.Status = step.to
	c.JSON(http.StatusOK, toTeleConsultResponse(*tc))
}
