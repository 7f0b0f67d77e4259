package service

import (
	"go.uber.org/zap"

	"github.com/spandan012/HRMS-liteApp/internal/repository"
)

// Service aggregates all service interfaces.
type Service struct {
	Employee   EmployeeService
	Attendance AttendanceService
	Summary    SummaryService
	Export     ExportService
}

// NewService wires the services onto the repository layer.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Employee:   NewEmployeeService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Summary:    NewSummaryService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
