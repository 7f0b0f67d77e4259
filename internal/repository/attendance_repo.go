package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/spandan012/HRMS-liteApp/internal/model"
)

// AttendanceRepository is the attendance data access interface.
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.AttendanceRecord) error
	// ListByEmployee returns the employee's records ordered by date
	// descending. startDate / endDate are inclusive bounds; an empty
	// string skips that bound.
	ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]model.AttendanceRecord, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepo) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]model.AttendanceRecord, error) {
	q := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID)
	if startDate != "" {
		q = q.Where("date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("date <= ?", endDate)
	}

	var records []model.AttendanceRecord
	err := q.Order("date DESC").Find(&records).Error
	return records, err
}

func (r *attendanceRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
