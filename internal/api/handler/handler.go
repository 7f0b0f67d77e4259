package handler

import "github.com/spandan012/HRMS-liteApp/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
	Summary    *SummaryHandler
	Export     *ExportHandler
}

// NewHandler wires the handlers onto the service layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Employee:   NewEmployeeHandler(svc.Employee),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Summary:    NewSummaryHandler(svc.Summary),
		Export:     NewExportHandler(svc.Export),
	}
}
