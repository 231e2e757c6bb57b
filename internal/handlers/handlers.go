package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"medicare/internal/auth"
	"medicare/internal/models"
	"medicare/internal/queue"
	"medicare/internal/response"
	"medicare/internal/storage"
)

// Store is everything the handlers read from and write to the database.
// storage.Store implements it.
type Store interface {
	CreateUser(ctx context.Context, user *models.User, profile *models.DoctorProfile) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)

	ListDoctors(ctx context.Context, specialization string) ([]models.DoctorProfile, error)
	DoctorByUserID(ctx context.Context, userID uint) (*models.DoctorProfile, error)

	CreateAppointment(ctx context.Context, appt *models.Appointment) error
	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context, filter storage.AppointmentFilter) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id uint, status models.AppointmentStatus) error

	CreatePrescription(ctx context.Context, rx *models.Prescription) error
	ListPrescriptions(ctx context.Context, filter storage.PrescriptionFilter) ([]models.Prescription, error)

	CreateTeleConsult(ctx context.Context, tc *models.TeleConsultation) error
	TeleConsultByID(ctx context.Context, id uint) (*models.TeleConsultation, error)
	ListTeleConsults(ctx context.Context, doctorID uint) ([]models.TeleConsultation, error)
	UpdateTeleConsultStatus(ctx context.Context, id uint, status models.TeleConsultStatus) error
}

var _ Store = (*storage.Store)(nil)

type Handler struct {
	store  Store
	queues *queue.Registry
	cache  storage.Cache
	tokens *auth.TokenIssuer
	log    zerolog.Logger
	now    func() time.Time
}

func New(store Store, queues *queue.Registry, cache storage.Cache, tokens *auth.TokenIssuer, log zerolog.Logger) *Handler {
	return &Handler{
		store:  store,
		queues: queues,
		cache:  cache,
		tokens: tokens,
		log:    log.With().Str("component", "http").Logger(),
		now:    time.Now,
	}
}

// Mount registers every route on r.
func (h *Handler) Mount(r gin.IRouter) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.RefreshToken)
	}

	api := r.Group("/api", auth.AuthMiddleware(h.tokens))
	{
		api.GET("/doctors", h.GetDoctorsHandler)
		api.GET("/doctors/:id", h.GetDoctorHandler)
		api.GET("/appointments", h.GetAppointmentsHandler)
		api.GET("/timeline", h.GetTimelineHandler)
	}

	patient := api.Group("", auth.RequireRole(models.RolePatient))
	{
		patient.POST("/appointments", h.CreateAppointmentHandler)
		patient.POST("/appointments/:id/cancel", h.CancelAppointmentHandler)
		patient.GET("/prescriptions", h.GetPatientPrescriptionsHandler)
	}

	doctor := api.Group("/doctor", auth.RequireRole(models.RoleDoctor))
	{
		doctor.GET("/queue", h.GetQueueHandler)
		doctor.POST("/queue", h.EnqueuePatientHandler)
		doctor.POST("/queue/:entryID/move-up", h.MoveUpHandler)
		doctor.POST("/queue/:entryID/move-down", h.MoveDownHandler)
		doctor.POST("/queue/:entryID/prioritize", h.PrioritizeHandler)
		doctor.POST("/queue/:entryID/complete", h.CompleteHandler)
		doctor.POST("/queue/:entryID/arrive", h.ArriveHandler)
		doctor.POST("/queue/:entryID/start", h.StartHandler)

		doctor.GET("/prescriptions", h.GetDoctorPrescriptionsHandler)
		doctor.POST("/prescriptions", h.CreatePrescriptionHandler)

		doctor.GET("/teleconsults", h.GetTeleConsultsHandler)
		doctor.POST("/teleconsults", h.CreateTeleConsultHandler)
		doctor.POST("/teleconsults/:id/start", h.StartTeleConsultHandler)
		doctor.POST("/teleconsults/:id/complete", h.CompleteTeleConsultHandler)
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(auth.ContextUserID)
}

func currentRole(c *gin.Context) models.Role {
	return models.Role(c.GetString(auth.ContextRole))
}

// idParam parses a numeric path parameter, answering 400 itself on failure.
func idParam(c *gin.Context, name, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    code,
			Message: "Invalid identifier",
		})
		return 0, false
	}
	return uint(id), true
}

func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid request data",
		Details: err.Error(),
	})
}

func (h *Handler) dbError(c *gin.Context, message string, err error) {
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Code:    "DB_ERROR",
		Message: message,
		Details: err.Error(),
	})
}

// parseDay validates a YYYY-MM-DD day.
func parseDay(s string) (time.Time, error) {
	day, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, errors.New("date must be in YYYY-MM-DD format")
	}
	return day, nil
}

func (h *Handler) today() time.Time {
	now := h.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
