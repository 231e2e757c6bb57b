package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"medicare/internal/models"
	"medicare/internal/response"
	"medicare/internal/storage"
)

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=patient doctor"`
	Phone    string `json:"phone"`

	// doctor only
	Qualifications  string  `json:"qualifications"`
	ExperienceYears int     `json:"experience_years" binding:"min=0"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultation_fee" binding:"min=0"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register godoc
// @Summary		Register
// @Description	Creates a patient or doctor account. Doctors must provide their qualifications.
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		RegisterRequest				true	"Account data"
// @Success		201		{object}	response.SuccessResponse	"Account created"
// @Failure		400		{object}	response.ErrorResponse		"VALIDATION_ERROR or EMAIL_EXISTS"
// @Failure		500		{object}	response.ErrorResponse		"PASSWORD_HASH_ERROR, DB_ERROR"
// @Router			/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	role := models.Role(req.Role)
	if role == models.RoleDoctor && strings.TrimSpace(req.Qualifications) == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Doctors must provide their qualifications",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.store.UserByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "EMAIL_EXISTS",
			Message: "This email is already registered. Please login instead.",
		})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		h.dbError(c, "Failed to look up user", err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "PASSWORD_HASH_ERROR",
			Message: "Failed to hash password",
		})
		return
	}

	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Phone:        req.Phone,
	}
	var profile *models.DoctorProfile
	if role == models.RoleDoctor {
		profile = &models.DoctorProfile{
			Qualifications:  req.Qualifications,
			ExperienceYears: req.ExperienceYears,
			Specializations: req.Specialization,
			ConsultationFee: req.ConsultationFee,
			IsAvailable:     true,
		}
	}

	if err := h.store.CreateUser(c.Request.Context(), user, profile); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "EMAIL_EXISTS",
				Message: "This email is already registered. Please login instead.",
			})
			return
		}
		h.dbError(c, "Failed to create user", err)
		return
	}
	if profile != nil {
		h.invalidateDoctors(c.Request.Context())
	}

	h.log.Info().Uint("user_id", user.ID).Str("role", req.Role).Msg("user registered")
	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Account created",
	})
}

// Login godoc
// @Summary		Login
// @Description	Checks credentials and issues an access and refresh token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		LoginRequest			true	"Credentials"
// @Success		200		{object}	response.TokenResponse	"Logged in"
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		401		{object}	response.ErrorResponse	"INVALID_CREDENTIALS"
// @Failure		500		{object}	response.ErrorResponse	"TOKEN_GENERATION_ERROR"
// @Router			/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.dbError(c, "Failed to look up user", err)
		return
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_CREDENTIALS",
			Message: "Invalid email or password",
		})
		return
	}

	h.issueTokens(c, user)
}

// RefreshToken godoc
// @Summary		Refresh tokens
// @Description	Exchanges a refresh token for a new token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			refresh_token	body		RefreshTokenRequest		true	"Refresh token"
// @Success		200				{object}	response.TokenResponse	"New token pair"
// @Failure		400				{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		401				{object}	response.ErrorResponse	"INVALID_REFRESH_TOKEN or USER_NOT_FOUND"
// @Failure		500				{object}	response.ErrorResponse	"TOKEN_GENERATION_ERROR"
// @Router			/auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	claims, err := h.tokens.ParseRefresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Invalid or expired refresh token",
		})
		return
	}

	user, err := h.store.UserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "User not found",
		})
		return
	}

	h.issueTokens(c, user)
}

func (h *Handler) issueTokens(c *gin.Context, user *models.User) {
	access, refresh, err := h.tokens.Pair(user.ID, user.Role)
	if err != nil {
		h.log.Error().Err(err).Uint("user_id", user.ID).Msg("token generation failed")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Failed to generate tokens",
		})
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         string(user.Role),
	})
}
