package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/spandan012/HRMS-liteApp/internal/model"
)

// EmployeePresenceRow is one row of the per-employee present-day count.
type EmployeePresenceRow struct {
	EmployeeID  string `gorm:"column:employee_id"`
	FullName    string `gorm:"column:full_name"`
	PresentDays int64  `gorm:"column:present_days"`
}

// SummaryRepository computes store-wide aggregates. Nothing is cached;
// every call hits the store.
type SummaryRepository interface {
	// PresentByEmployee returns one row per existing employee (left join
	// semantics, zero counts included), ordered by present-day count
	// descending with ties broken by full name ascending.
	PresentByEmployee(ctx context.Context) ([]EmployeePresenceRow, error)
}

type summaryRepo struct {
	db *gorm.DB
}

// NewSummaryRepo creates the GORM SummaryRepository.
func NewSummaryRepo(db *gorm.DB) SummaryRepository {
	return &summaryRepo{db: db}
}

func (r *summaryRepo) PresentByEmployee(ctx context.Context) ([]EmployeePresenceRow, error) {
	var rows []EmployeePresenceRow
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Select("employees.employee_id, employees.full_name, COUNT(attendance_records.id) AS present_days").
		Joins("LEFT JOIN attendance_records ON attendance_records.employee_id = employees.employee_id AND attendance_records.status = ?", model.StatusPresent).
		Group("employees.employee_id, employees.full_name").
		Order("present_days DESC, employees.full_name ASC").
		Scan(&rows).Error
	return rows, err
}
