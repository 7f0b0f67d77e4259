package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/spandan012/HRMS-liteApp/internal/model"
	"github.com/spandan012/HRMS-liteApp/internal/repository"
)

// ErrExportGenerateFail wraps workbook construction failures.
var ErrExportGenerateFail = errors.New("failed to generate export file")

// ExportService renders the summary as a downloadable workbook and a
// per-employee attendance feed as iCalendar.
//
// Both exports are built from live store contents, like the summary
// endpoint they mirror. Buffers come back ready to stream; the handler
// only sets headers.
type ExportService interface {
	// SummaryWorkbook renders the totals and the per-employee present-day
	// table as an .xlsx file. Returns the content and a suggested filename.
	SummaryWorkbook(ctx context.Context) (*bytes.Buffer, string, error)
	// EmployeeCalendar renders one employee's attendance history as an
	// iCalendar feed of all-day events.
	EmployeeCalendar(ctx context.Context, employeeID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) SummaryWorkbook(ctx context.Context) (*bytes.Buffer, string, error) {
	employees, err := s.repo.Employee.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, "", err
	}
	records, err := s.repo.Attendance.Count(ctx)
	if err != nil {
		s.logger.Error("count attendance records failed", zap.Error(err))
		return nil, "", err
	}
	present, err := s.repo.Attendance.CountByStatus(ctx, model.StatusPresent)
	if err != nil {
		s.logger.Error("count present records failed", zap.Error(err))
		return nil, "", err
	}
	rows, err := s.repo.Summary.PresentByEmployee(ctx)
	if err != nil {
		s.logger.Error("present-by-employee query failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	f.SetSheetName("Sheet1", sheet)

	// totals block
	f.SetCellValue(sheet, "A1", "Employees")
	f.SetCellValue(sheet, "B1", employees)
	f.SetCellValue(sheet, "A2", "Attendance records")
	f.SetCellValue(sheet, "B2", records)
	f.SetCellValue(sheet, "A3", "Present records")
	f.SetCellValue(sheet, "B3", present)

	// per-employee table
	f.SetCellValue(sheet, "A5", "Employee ID")
	f.SetCellValue(sheet, "B5", "Full Name")
	f.SetCellValue(sheet, "C5", "Present Days")
	for i, row := range rows {
		r := 6 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.PresentDays)
	}

	f.SetColWidth(sheet, "A", "B", 24)
	f.SetColWidth(sheet, "C", "C", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance-summary-%s.xlsx", time.Now().UTC().Format("20060102"))
	return buf, filename, nil
}

func (s *exportService) EmployeeCalendar(ctx context.Context, employeeID string) (*bytes.Buffer, string, error) {
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEmployeeNotFound
		}
		s.logger.Error("look up employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, "", err
	}

	records, err := s.repo.Attendance.ListByEmployee(ctx, employeeID, "", "")
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//HRMS Lite//Attendance//EN")
	cal.SetName(fmt.Sprintf("Attendance: %s", emp.FullName))

	for _, record := range records {
		day, parseErr := time.Parse("2006-01-02", record.Date)
		if parseErr != nil {
			// date validation is format-only, so a stored non-calendar
			// date like 2024-02-30 has no event representation
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("attendance-%d@hrms-lite", record.ID))
		ev.SetDtStampTime(record.CreatedAt.UTC())
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.SetSummary(fmt.Sprintf("%s: %s", emp.FullName, record.Status))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("attendance-%s.ics", emp.EmployeeID)
	return buf, filename, nil
}
