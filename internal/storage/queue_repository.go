package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medicare/internal/models"
	"medicare/internal/queue"
)

// QueueRepository mirrors doctor queues into the queue_entries table. Each
// save replaces the doctor's rows and touches the doctor's queue_snapshots row.
type QueueRepository struct {
	db *gorm.DB
}

func NewQueueRepository(db *gorm.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

func (r *QueueRepository) Load(ctx context.Context, doctorID uint) ([]queue.Entry, bool, error) {
	var saved int64
	err := r.db.WithContext(ctx).Model(&models.QueueSnapshot{}).
		Where("doctor_id = ?", doctorID).
		Count(&saved).Error
	if err != nil {
		return nil, false, err
	}

	var rows []models.QueueEntry
	err = r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, false, err
	}

	entries := make([]queue.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, queue.Entry{
			ID:              row.EntryID,
			Position:        row.Position,
			PatientID:       row.PatientID,
			AppointmentID:   row.AppointmentID,
			Name:            row.Name,
			Complaint:       row.Complaint,
			RiskLevel:       queue.RiskLevel(row.RiskLevel),
			AppointmentType: queue.AppointmentType(row.AppointmentType),
			ScheduledTime:   row.ScheduledTime,
			Phone:           row.Phone,
			Arrived:         row.Arrived,
			Status:          queue.Status(row.Status),
		})
	}
	return entries, saved > 0 || len(rows) > 0, nil
}

func (r *QueueRepository) Save(ctx context.Context, doctorID uint, entries []queue.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doctor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&models.QueueSnapshot{DoctorID: doctorID}).Error
		if err != nil {
			return err
		}
		// hard delete, entry_id is unique across soft-deleted rows too
		if err := tx.Unscoped().Where("doctor_id = ?", doctorID).Delete(&models.QueueEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		rows := make([]models.QueueEntry, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, models.QueueEntry{
				DoctorID:        doctorID,
				EntryID:         e.ID,
				Position:        e.Position,
				PatientID:       e.PatientID,
				AppointmentID:   e.AppointmentID,
				Name:            e.Name,
				Complaint:       e.Complaint,
				RiskLevel:       string(e.RiskLevel),
				AppointmentType: string(e.AppointmentType),
				ScheduledTime:   e.ScheduledTime,
				Phone:           e.Phone,
				Arrived:         e.Arrived,
				Status:          string(e.Status),
			})
		}
		return tx.Create(&rows).Error
	})
}

func (r *QueueRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Unscoped().Delete(&models.QueueEntry{}).Error; err != nil {
			return err
		}
		return all.Delete(&models.QueueSnapshot{}).Error
	})
}
