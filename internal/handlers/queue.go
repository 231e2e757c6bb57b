package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"medicare/internal/models"
	"medicare/internal/queue"
	"medicare/internal/response"
	"medicare/internal/storage"
)

type EnqueueRequest struct {
	// Queues a booked appointment. When zero the body describes a walk-in.
	AppointmentID uint `json:"appointment_id"`

	Name            string `json:"name" example:"Robert Johnson"`
	Complaint       string `json:"complaint" example:"Chest pain, shortness of breath"`
	RiskLevel       string `json:"risk_level" binding:"omitempty,oneof=low medium high" example:"high"`
	AppointmentType string `json:"appointment_type" binding:"omitempty,oneof=in-person tele-consult" example:"in-person"`
	ScheduledTime   string `json:"scheduled_time" example:"09:00 AM"`
	Phone           string `json:"phone" example:"+1 234-567-8901"`
	Arrived         bool   `json:"arrived"`
}

type QueueEntryResponse struct {
	queue.Entry
	EstimatedWait string        `json:"estimated_wait" example:"~15 min"`
	Actions       queue.Actions `json:"actions"`
}

type QueueStats struct {
	Total        int `json:"total"`
	Arrived      int `json:"arrived"`
	HighPriority int `json:"high_priority"`
	TeleConsults int `json:"tele_consults"`
}

type QueueResponse struct {
	Stats   QueueStats           `json:"stats"`
	Entries []QueueEntryResponse `json:"entries"`
}

func toQueueResponse(entries []queue.Entry) QueueResponse {
	resp := QueueResponse{Entries: make([]QueueEntryResponse, 0, len(entries))}
	resp.Stats.Total = len(entries)
	for _, e := range entries {
		if e.Arrived {
			resp.Stats.Arrived++
		}
		if e.RiskLevel == queue.RiskHigh {
			resp.Stats.HighPriority++
		}
		if e.AppointmentType == queue.TeleConsult {
			resp.Stats.TeleConsults++
		}
		resp.Entries = append(resp.Entries, QueueEntryResponse{
			Entry:         e,
			EstimatedWait: e.EstimatedWait(),
			Actions:       queue.ActionsFor(e, len(entries)),
		})
	}
	return resp
}

// queueError answers with the status matching a queue operation failure.
func (h *Handler) queueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queue.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "ENTRY_NOT_FOUND",
			Message: "Queue entry not found",
		})
	case errors.Is(err, queue.ErrAlreadyQueued):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "ALREADY_QUEUED",
			Message: "Appointment is already in the queue",
			Details: err.Error(),
		})
	case errors.Is(err, queue.ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "INVALID_TRANSITION",
			Message: "Entry is not in a state that allows this action",
			Details: err.Error(),
		})
	case errors.Is(err, queue.ErrInvalidEntry), errors.Is(err, queue.ErrDuplicateID):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid queue entry",
			Details: err.Error(),
		})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("queue operation failed")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "QUEUE_ERROR",
			Message: "Queue operation failed",
			Details: err.Error(),
		})
	}
}

// GetQueueHandler godoc
// @Summary		Today's queue
// @Description	Returns the doctor's queue in order with estimated waits and the actions allowed on each entry
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	QueueResponse
// @Failure		403	{object}	response.ErrorResponse	"FORBIDDEN_ROLE"
// @Failure		500	{object}	response.ErrorResponse	"QUEUE_ERROR"
// @Router			/api/doctor/queue [get]
func (h *Handler) GetQueueHandler(c *gin.Context) {
	entries, err := h.queues.Snapshot(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQueueResponse(entries))
}

// EnqueuePatientHandler godoc
// @Summary		Add a patient to the queue
// @Description	Queues one of today's booked appointments by appointment_id (the appointment moves to in_queue) or a walk-in patient described by the body. New entries join at the tail.
// @Tags			queue
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			entry	body		EnqueueRequest	true	"Appointment or walk-in"
// @Success		201		{object}	QueueEntryResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		404		{object}	response.ErrorResponse	"APPOINTMENT_NOT_FOUND"
// @Failure		409		{object}	response.ErrorResponse	"INVALID_TRANSITION or ALREADY_QUEUED"
// @Failure		500		{object}	response.ErrorResponse	"DB_ERROR or QUEUE_ERROR"
// @Router			/api/doctor/queue [post]
func (h *Handler) EnqueuePatientHandler(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	ctx := c.Request.Context()
	doctorID := currentUserID(c)

	var entry queue.Entry
	if req.AppointmentID != 0 {
		appt, err := h.store.AppointmentByID(ctx, req.AppointmentID)
		if errors.Is(err, storage.ErrNotFound) || (err == nil && appt.DoctorID != doctorID) {
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
		if !queueable(appt.Status) {
			c.JSON(http.StatusConflict, response.ErrorResponse{
				Code:    "INVALID_TRANSITION",
				Message: "Only active appointments can be queued",
				Details: string(appt.Status),
			})
			return
		}
		if today := h.today().Format(time.DateOnly); appt.AppointmentDate != today {
			c.JSON(http.StatusConflict, response.ErrorResponse{
				Code:    "INVALID_TRANSITION",
				Message: "Only today's appointments can be queued",
				Details: appt.AppointmentDate,
			})
			return
		}
		entry = entryFromAppointment(*appt)
		entry.Arrived = req.Arrived
	} else {
		if strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Walk-in patients need a name",
			})
			return
		}
		entry = queue.Entry{
			Name:            strings.TrimSpace(req.Name),
			Complaint:       req.Complaint,
			RiskLevel:       queue.RiskLevel(req.RiskLevel),
			AppointmentType: queue.AppointmentType(req.AppointmentType),
			ScheduledTime:   req.ScheduledTime,
			Phone:           req.Phone,
			Arrived:         req.Arrived,
		}
		if entry.RiskLevel == "" {
			entry.RiskLevel = queue.RiskLow
		}
		if entry.AppointmentType == "" {
			entry.AppointmentType = queue.InPerson
		}
	}

	added, err := h.queues.Enqueue(ctx, doctorID, entry)
	if err != nil {
		h.queueError(c, err)
		return
	}
	if added.AppointmentID != 0 {
		h.syncAppointment(ctx, added.AppointmentID, models.AppointmentInQueue)
	}

	entries, err := h.queues.Snapshot(ctx, doctorID)
	if err != nil {
		h.queueError(c, err)
		return
	}
	h.log.Info().Uint("doctor_id", doctorID).Str("entry_id", added.ID).Int("position", added.Position).Msg("patient queued")
	c.JSON(http.StatusCreated, QueueEntryResponse{
		Entry:         added,
		EstimatedWait: added.EstimatedWait(),
		Actions:       queue.ActionsFor(added, len(entries)),
	})
}

// queueable reports whether an appointment may enter the queue. in_queue and
// in_progress are accepted so an appointment whose entry was lost to a reset
// can be queued again; the registry rejects one that is still queued.
func queueable(status models.AppointmentStatus) bool {
	switch status {
	case models.AppointmentScheduled, models.AppointmentConfirmed,
		models.AppointmentInQueue, models.AppointmentInProgress:
		return true
	}
	return false
}

func entryFromAppointment(a models.Appointment) queue.Entry {
	risk := queue.RiskLevel(a.RiskLevel)
	if !risk.Valid() {
		risk = queue.RiskLow
	}
	apptType := queue.InPerson
	if a.AppointmentType == models.AppointmentTeleConsult {
		apptType = queue.TeleConsult
	}
	return queue.Entry{
		PatientID:       a.PatientID,
		AppointmentID:   a.ID,
		Name:            a.Patient.FullName,
		Complaint:       a.Complaint,
		RiskLevel:       risk,
		AppointmentType: apptType,
		ScheduledTime:   a.ScheduledTime,
		Phone:           a.Patient.Phone,
	}
}

// syncAppointment follows a queue transition on the linked appointment. The
// queue stays authoritative when the update fails.
func (h *Handler) syncAppointment(ctx context.Context, appointmentID uint, status models.AppointmentStatus) {
	if err := h.store.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		h.log.Warn().Err(err).Uint("appointment_id", appointmentID).Str("status", string(status)).
			Msg("failed to update appointment status")
	}
}

type reorderFunc func(ctx context.Context, doctorID uint, id string) ([]queue.Entry, error)

func (h *Handler) reorder(c *gin.Context, op reorderFunc) {
	entries, err := op(c.Request.Context(), currentUserID(c), c.Param("entryID"))
	if err != nil {
		h.queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQueueResponse(entries))
}

// MoveUpHandler godoc
// @Summary		Move an entry up
// @Description	Swaps the entry with the one ahead of it. Does nothing for the first entry.
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			entryID	path		string	true	"Queue entry id"
// @Success		200		{object}	QueueResponse
// @Failure		404		{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/doctor/queue/{entryID}/move-up [post]
func (h *Handler) MoveUpHandler(c *gin.Context) {
	h.reorder(c, h.queues.MoveUp)
}

// MoveDownHandler godoc
// @Summary		Move an entry down
// @Description	Swaps the entry with the one behind it. Does nothing for the last entry.
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			entryID	path		string	true	"Queue entry id"
// @Success		200		{object}	QueueResponse
// @Failure		404		{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/doctor/queue/{entryID}/move-down [post]
func (h *Handler) MoveDownHandler(c *gin.Context) {
	h.reorder(c, h.queues.MoveDown)
}

// PrioritizeHandler godoc
// @Summary		Prioritize a high risk entry
// @Description	Moves a high risk entry to the front of the queue
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			entryID	path		string	true	"Queue entry id"
// @Success		200		{object}	QueueResponse
// @Failure		404		{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Failure		409		{object}	response.ErrorResponse	"PRIORITIZE_NOT_ALLOWED"
// @Router			/api/doctor/queue/{entryID}/prioritize [post]
func (h *Handler) PrioritizeHandler(c *gin.Context) {
	entry, err := h.queues.Get(c.Request.Context(), currentUserID(c), c.Param("entryID"))
	if err != nil {
		h.queueError(c, err)
		return
	}
	if entry.RiskLevel != queue.RiskHigh {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "PRIORITIZE_NOT_ALLOWED",
			Message: "Only high risk patients can be prioritized",
		})
		return
	}
	h.reorder(c, h.queues.Prioritize)
}

// CompleteHandler godoc
// @Summary		Complete a consultation
// @Description	Removes the entry from the queue, closing the gap. A linked appointment is marked completed.
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			entryID	path		string	true	"Queue entry id"
// @Success		200		{object}	QueueResponse
// @Failure		404		{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/doctor/queue/{entryID}/complete [post]
func (h *Handler) CompleteHandler(c *gin.Context) {
	ctx := c.Request.Context()
	removed, entries, err := h.queues.Complete(ctx, currentUserID(c), c.Param("entryID"))
	if err != nil {
		h.queueError(c, err)
		return
	}
	if removed.AppointmentID != 0 {
		h.syncAppointment(ctx, removed.AppointmentID, models.AppointmentCompleted)
	}
	h.log.Info().Uint("doctor_id", currentUserID(c)).Str("entry_id", removed.ID).Msg("consultation completed")
	c.JSON(http.StatusOK, toQueueResponse(entries))
}

// ArriveHandler godoc
// @Summary		Mark a patient as arrived
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			entryID	path		string	true	"Queue entry id"
// @Success		200		{object}	QueueResponse
// @Failure		404		{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/doctor/queue/{entryID}/arrive [post]
func (h *Handler) ArriveHandler(c *gin.Context) {
	h.reorder(c, func(ctx context.Context, doctorID uint, id string) ([]queue.Entry, error) {
		return h.queues.SetArrived(ctx, doctorID, id, true)
	})
}

// StartHandler godoc
// @Summary		Start a consultation
// @Description	Marks the entry in progress. A linked appointment moves to in_progress.
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			entryID	path		string	true	"Queue entry id"
// @Success		200		{object}	QueueResponse
// @Failure		404		{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Failure		409		{object}	response.ErrorResponse	"INVALID_TRANSITION"
// @Router			/api/doctor/queue/{entryID}/start [post]
func (h *Handler) StartHandler(c *gin.Context) {
	ctx := c.Request.Context()
	doctorID := currentUserID(c)
	id := c.Param("entryID")

	entries, err := h.queues.Start(ctx, doctorID, id)
	if err != nil {
		h.queueError(c, err)
		return
	}
	for _, e := range entries {
		if e.ID == id && e.AppointmentID != 0 {
			h.syncAppointment(ctx, e.AppointmentID, models.AppointmentInProgress)
		}
	}
	c.JSON(http.StatusOK, toQueueResponse(entries))
}
