package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/spandan012/HRMS-liteApp/internal/dto"
	"github.com/spandan012/HRMS-liteApp/internal/model"
	"github.com/spandan012/HRMS-liteApp/internal/repository"
	"github.com/spandan012/HRMS-liteApp/internal/validate"
)

// ── attendance business errors ──

var (
	ErrAttendanceFieldsRequired = errors.New("employeeId, date and status are required")
	ErrInvalidDate              = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidStatus            = errors.New("invalid status, must be Present or Absent")
	ErrInvalidStartDate         = errors.New("invalid startDate format, expected YYYY-MM-DD")
	ErrInvalidEndDate           = errors.New("invalid endDate format, expected YYYY-MM-DD")
	ErrAttendanceExists         = errors.New("attendance already recorded for this date")
)

// AttendanceService is the attendance business interface.
type AttendanceService interface {
	Record(ctx context.Context, req *dto.RecordAttendanceRequest) (*dto.AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, filter *dto.AttendanceFilter) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) Record(ctx context.Context, req *dto.RecordAttendanceRequest) (*dto.AttendanceResponse, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	date := strings.TrimSpace(req.Date)
	status := strings.TrimSpace(req.Status)

	if employeeID == "" || date == "" || status == "" {
		return nil, ErrAttendanceFieldsRequired
	}
	if !validate.IsValidDate(date) {
		return nil, ErrInvalidDate
	}
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("look up employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	record := &model.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Attendance.Create(ctx, record); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// the (employee_id, date) unique index rejected a second
			// record for the same day
			return nil, ErrAttendanceExists
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// employee deleted between the existence check and the insert
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("record attendance failed",
			zap.String("employee_id", employeeID),
			zap.String("date", date),
			zap.Error(err),
		)
		return nil, err
	}

	resp := toAttendanceResponse(record)
	return &resp, nil
}

func (s *attendanceService) ListByEmployee(ctx context.Context, employeeID string, filter *dto.AttendanceFilter) ([]dto.AttendanceResponse, error) {
	// Existence first: an unknown employee is 404 even when the filters are
	// also malformed.
	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("look up employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	startDate := strings.TrimSpace(filter.StartDate)
	endDate := strings.TrimSpace(filter.EndDate)

	if startDate != "" && !validate.IsValidDate(startDate) {
		return nil, ErrInvalidStartDate
	}
	if endDate != "" && !validate.IsValidDate(endDate) {
		return nil, ErrInvalidEndDate
	}

	records, err := s.repo.Attendance.ListByEmployee(ctx, employeeID, startDate, endDate)
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, toAttendanceResponse(&records[i]))
	}
	return result, nil
}

func toAttendanceResponse(record *model.AttendanceRecord) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		Status:     record.Status,
		CreatedAt:  record.CreatedAt.UTC().Format(time.RFC3339),
	}
}
