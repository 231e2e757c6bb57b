package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"medicare/internal/models"
	"medicare/internal/response"
	"medicare/internal/storage"
)

const doctorsCacheTTL = time.Hour

type DoctorResponse struct {
	ID              uint     `json:"id" example:"12"` // user id of the doctor
	FullName        string   `json:"full_name" example:"Dr. Sarah Chen"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Qualifications  string   `json:"qualifications" example:"MBBS, MD"`
	ExperienceYears int      `json:"experience_years" example:"12"`
	Specializations []string `json:"specializations"`
	ConsultationFee float64  `json:"consultation_fee" example:"500"`
	Bio             string   `json:"bio"`
	IsAvailable     bool     `json:"is_available"`
	Rating          float64  `json:"rating" example:"4.8"`
	TotalReviews    int      `json:"total_reviews"`
}

func toDoctorResponse(d models.DoctorProfile) DoctorResponse {
	return DoctorResponse{
		ID:              d.UserID,
		FullName:        d.User.FullName,
		Email:           d.User.Email,
		Phone:           d.User.Phone,
		Qualifications:  d.Qualifications,
		ExperienceYears: d.ExperienceYears,
		Specializations: d.SpecializationList(),
		ConsultationFee: d.ConsultationFee,
		Bio:             d.Bio,
		IsAvailable:     d.IsAvailable,
		Rating:          d.Rating,
		TotalReviews:    d.TotalReviews,
	}
}

func doctorsCacheKey(specialization string) string {
	return "doctors_" + strings.ToLower(strings.TrimSpace(specialization))
}

// invalidateDoctors drops the unfiltered directory. Filtered lists expire on
// their own TTL.
func (h *Handler) invalidateDoctors(ctx context.Context) {
	if err := h.cache.Delete(ctx, doctorsCacheKey("")); err != nil {
		h.log.Warn().Err(err).Msg("failed to invalidate doctors cache")
	}
}

// GetDoctorsHandler godoc
// @Summary		List doctors
// @Description	Lists available doctors, best rated first, optionally filtered by specialization. The result is cached in Redis.
// @Tags			doctors
// @Produce		json
// @Security		BearerAuth
// @Param			specialization	query		string	false	"Specialization filter, case insensitive"
// @Success		200				{array}		DoctorResponse
// @Failure		401				{object}	response.ErrorResponse	"NO_AUTH_HEADER or INVALID_TOKEN"
// @Failure		500				{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/doctors [get]
func (h *Handler) GetDoctorsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	specialization := c.Query("specialization")
	cacheKey := doctorsCacheKey(specialization)

	if cached, err := h.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var doctors []DoctorResponse
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			c.JSON(http.StatusOK, doctors)
			return
		}
	} else if err != nil && !errors.Is(err, storage.ErrCacheMiss) {
		h.log.Warn().Err(err).Str("key", cacheKey).Msg("doctors cache read failed")
	}

	profiles, err := h.store.ListDoctors(ctx, specialization)
	if err != nil {
		h.dbError(c, "Failed to load doctors", err)
		return
	}

	doctors := make([]DoctorResponse, 0, len(profiles))
	for _, p := range profiles {
		doctors = append(doctors, toDoctorResponse(p))
	}

	if body, err := json.Marshal(doctors); err == nil {
		if err := h.cache.Set(ctx, cacheKey, string(body), doctorsCacheTTL); err != nil {
			h.log.Warn().Err(err).Str("key", cacheKey).Msg("doctors cache write failed")
		}
	}

	c.JSON(http.StatusOK, doctors)
}

// GetDoctorHandler godoc
// @Summary		Doctor profile
// @Tags			doctors
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int	true	"Doctor user id"
// @Success		200	{object}	DoctorResponse
// @Failure		400	{object}	response.ErrorResponse	"INVALID_DOCTOR_ID"
// @Failure		404	{object}	response.ErrorResponse	"DOCTOR_NOT_FOUND"
// @Failure		500	{object}	response.ErrorResponse	"DB_ERROR"
// @Router			/api/doctors/{id} [get]
func (h *Handler) GetDoctorHandler(c *gin.Context) {
	id, ok := idParam(c, "id", "INVALID_DOCTOR_ID")
	if !ok {
		return
	}

	profile, err := h.store.DoctorByUserID(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, toDoctorResponse(*profile))
}
