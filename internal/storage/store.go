package storage

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"medicare/internal/models"
)

// Store is the gorm backed store for accounts, appointments, prescriptions
// and tele-consultations.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser inserts the user and, for doctors, their profile in one transaction.
func (s *Store) CreateUser(ctx context.Context, user *models.User, profile *models.DoctorProfile) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if profile == nil {
			return nil
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
	return translate(err)
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListDoctors returns available doctors, optionally narrowed to one
// specialization (case-insensitive substring match).
func (s *Store) ListDoctors(ctx context.Context, specialization string) ([]models.DoctorProfile, error) {
	query := s.db.WithContext(ctx).Preload("User").Where("is_available = ?", true)
	if specialization != "" {
		query = query.Where("LOWER(specializations) LIKE ?", "%"+strings.ToLower(specialization)+"%")
	}
	var doctors []models.DoctorProfile
	if err := query.Order("rating DESC, id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *Store) DoctorByUserID(ctx context.Context, userID uint) (*models.DoctorProfile, error) {
	var doctor models.DoctorProfile
	if err := s.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

func (s *Store) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return translate(s.db.WithContext(ctx).Create(appt).Error)
}

func (s *Store) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).Preload("Patient").Preload("Doctor").First(&appt, id).Error; err != nil {
		return nil, translate(err)
	}
	return &appt, nil
}

// AppointmentFilter selects appointments by participant. Zero fields are ignored.
type AppointmentFilter struct {
	PatientID uint
	DoctorID  uint
}

func (s *Store) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	query := s.db.WithContext(ctx).Preload("Patient").Preload("Doctor")
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	var appts []models.Appointment
	if err := query.Order("appointment_date ASC, scheduled_time ASC").Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id uint, status models.AppointmentStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkNoShows closes appointments dated before the given YYYY-MM-DD day.
// Those that never got past scheduled, confirmed or in_queue become no_show;
// a consultation left in_progress when its queue was reset becomes completed.
func (s *Store) MarkNoShows(ctx context.Context, before string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
			Where("appointment_date < ? AND status IN ?", before, []models.AppointmentStatus{
				models.AppointmentScheduled, models.AppointmentConfirmed, models.AppointmentInQueue,
			}).
			Update("status", models.AppointmentNoShow)
		if res.Error != nil {
			return res.Error
		}
		total += res.RowsAffected

		res = tx.Model(&models.Appointment{}).
			Where("appointment_date < ? AND status = ?", before, models.AppointmentInProgress).
			Update("status", models.AppointmentCompleted)
		if res.Error != nil {
			return res.Error
		}
		total += res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) CreatePrescription(ctx context.Context, rx *models.Prescription) error {
	return translate(s.db.WithContext(ctx).Create(rx).Error)
}

// PrescriptionFilter narrows prescriptions by author, patient and a
// case-insensitive patient name search.
type PrescriptionFilter struct {
	DoctorID  uint
	PatientID uint
	Search    string
}

func (s *Store) ListPrescriptions(ctx context.Context, filter PrescriptionFilter) ([]models.Prescription, error) {
	query := s.db.WithContext(ctx)
	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(patient_name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	var rxs []models.Prescription
	if err := query.Order("created_at DESC").Find(&rxs).Error; err != nil {
		return nil, err
	}
	return rxs, nil
}

func (s *Store) CreateTeleConsult(ctx context.Context, tc *models.TeleConsultation) error {
	return translate(s.db.WithContext(ctx).Create(tc).Error)
}

func (s *Store) TeleConsultByID(ctx context.Context, id uint) (*models.TeleConsultation, error) {
	var tc models.TeleConsultation
	if err := s.db.WithContext(ctx).First(&tc, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tc, nil
}

func (s *Store) ListTeleConsults(ctx context.Context, doctorID uint) ([]models.TeleConsultation, error) {
	var tcs []models.TeleConsultation
	err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("date ASC, time ASC").
		Find(&tcs).Error
	if err != nil {
		return nil, err
	}
	return tcs, nil
}

func (s *Store) UpdateTeleConsultStatus(ctx context.Context, id uint, status models.TeleConsultStatus) error {
	res := s.db.WithContext(ctx).Model(&models.TeleConsultation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
