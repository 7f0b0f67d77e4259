package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/spandan012/HRMS-liteApp/internal/dto"
	"github.com/spandan012/HRMS-liteApp/internal/service"
	"github.com/spandan012/HRMS-liteApp/pkg/response"
)

// AttendanceHandler serves the attendance endpoints.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates the AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Record stores one day's status for an employee.
// POST /api/attendance
func (h *AttendanceHandler) Record(c *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "employeeId, date and status are required.")
		return
	}

	record, err := h.attendanceSvc.Record(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.Created(c, record)
}

// ListByEmployee returns an employee's attendance history, optionally
// bounded by startDate / endDate (inclusive).
// GET /api/employees/:employeeId/attendance
func (h *AttendanceHandler) ListByEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var filter dto.AttendanceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters.")
		return
	}

	records, err := h.attendanceSvc.ListByEmployee(c.Request.Context(), employeeID, &filter)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, gin.H{"records": records})
}

// handleAttendanceError translates attendance business errors to HTTP responses.
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendanceFieldsRequired):
		response.BadRequest(c, "employeeId, date and status are required.")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, "Invalid date format. Expected YYYY-MM-DD.")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, "Invalid status. Must be Present or Absent.")
	case errors.Is(err, service.ErrInvalidStartDate):
		response.BadRequest(c, "Invalid startDate format. Expected YYYY-MM-DD.")
	case errors.Is(err, service.ErrInvalidEndDate):
		response.BadRequest(c, "Invalid endDate format. Expected YYYY-MM-DD.")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, "Employee not found.")
	case errors.Is(err, service.ErrAttendanceExists):
		response.Conflict(c, "Attendance already recorded for this date.")
	default:
		response.InternalError(c)
	}
}
