package handlers

import (
	"context"
	"strings"
	"sync"
	"time"

	"medicare/internal/models"
	"medicare/internal/storage"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	mu            sync.Mutex
	nextID        uint
	users         map[uint]*models.User
	doctors       map[uint]*models.DoctorProfile // keyed by user id
	appointments  map[uint]*models.Appointment
	prescriptions []models.Prescription
	teleconsults  map[uint]*models.TeleConsultation
	listDoctors   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[uint]*models.User),
		doctors:      make(map[uint]*models.DoctorProfile),
		appointments: make(map[uint]*models.Appointment),
		teleconsults: make(map[uint]*models.TeleConsultation),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) CreateUser(_ context.Context, user *models.User, profile *models.DoctorProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return storage.ErrDuplicate
		}
	}
	user.ID = s.id()
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	if profile != nil {
		profile.ID = s.id()
		profile.UserID = user.ID
		profile.User = *user
		s.doctors[user.ID] = profile
	}
	return nil
}

func (s *fakeStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *fakeStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeStore) ListDoctors(_ context.Context, specialization string) ([]models.DoctorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listDoctors++
	var out []models.DoctorProfile
	for _, d := range s.doctors {
		if !d.IsAvailable {
			continue
		}
		if specialization != "" && !strings.Contains(strings.ToLower(d.Specializations), strings.ToLower(specialization)) {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (s *fakeStore) DoctorByUserID(_ context.Context, userID uint) (*models.DoctorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.doctors[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *fakeStore) CreateAppointment(_ context.Context, appt *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	appt.ID = s.id()
	appt.CreatedAt = time.Now()
	cp := *appt
	s.appointments[appt.ID] = &cp
	return nil
}

func (s *fakeStore) AppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *a
	if u, ok := s.users[cp.PatientID]; ok {
		cp.Patient = *u
	}
	if u, ok := s.users[cp.DoctorID]; ok {
		cp.Doctor = *u
	}
	return &cp, nil
}

func (s *fakeStore) ListAppointments(_ context.Context, filter storage.AppointmentFilter) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Appointment
	for _, a := range s.appointments {
		if filter.PatientID != 0 && a.PatientID != filter.PatientID {
			continue
		}
		if filter.DoctorID != 0 && a.DoctorID != filter.DoctorID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (s *fakeStore) UpdateAppointmentStatus(_ context.Context, id uint, status models.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return storage.ErrNotFound
	}
	a.Status = status
	return nil
}

func (s *fakeStore) CreatePrescription(_ context.Context, rx *models.Prescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rx.ID = s.id()
	rx.CreatedAt = time.Now()
	s.prescriptions = append(s.prescriptions, *rx)
	return nil
}

func (s *fakeStore) ListPrescriptions(_ context.Context, filter storage.PrescriptionFilter) ([]models.Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Prescription
	for _, rx := range s.prescriptions {
		if filter.DoctorID != 0 && rx.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != 0 && (rx.PatientID == nil || *rx.PatientID != filter.PatientID) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(rx.PatientName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, rx)
	}
	return out, nil
}

func (s *fakeStore) CreateTeleConsult(_ context.Context, tc *models.TeleConsultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tc.ID = s.id()
	cp := *tc
	s.teleconsults[tc.ID] = &cp
	return nil
}

func (s *fakeStore) TeleConsultByID(_ context.Context, id uint) (*models.TeleConsultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tc, ok := s.teleconsults[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *tc
	return &cp, nil
}

func (s *fakeStore) ListTeleConsults(_ context.Context, doctorID uint) ([]models.TeleConsultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TeleConsultation
	for _, tc := range s.teleconsults {
		if tc.DoctorID == doctorID {
			out = append(out, *tc)
		}
	}
	return out, nil
}

func (s *fakeStore) UpdateTeleConsultStatus(_ context.Context, id uint, status models.TeleConsultStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tc, ok := s.teleconsults[id]
	if !ok {
		return storage.ErrNotFound
	}
	tc.Status = status
	return nil
}

// memoryCache is a map backed storage.Cache.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", storage.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}
