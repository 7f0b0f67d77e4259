package repository

import "gorm.io/gorm"

// Repository aggregates all repository interfaces.
type Repository struct {
	Employee   EmployeeRepository
	Attendance AttendanceRepository
	Summary    SummaryRepository
}

// NewRepository wires the GORM-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:   NewEmployeeRepo(db),
		Attendance: NewAttendanceRepo(db),
		Summary:    NewSummaryRepo(db),
	}
}
