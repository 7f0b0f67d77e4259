package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spandan012/HRMS-liteApp/internal/model"
)

func setupTestExportService() (ExportService, *mockEmployeeRepo, *mockAttendanceRepo) {
	repo, employees, attendance := newTestRepository()
	svc := NewExportService(repo, zap.NewNop())
	return svc, employees, attendance
}

func TestExportService_SummaryWorkbook(t *testing.T) {
	svc, employees, attendance := setupTestExportService()
	seedEmployee(employees, "E1", "Ann")
	seedAttendance(attendance, "E1", "2024-01-01", "2024-01-02")

	buf, filename, err := svc.SummaryWorkbook(context.Background())
	if err != nil {
		t.Fatalf("SummaryWorkbook should succeed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty workbook")
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("expected xlsx (zip) content")
	}
	if !strings.HasPrefix(filename, "attendance-summary-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %q", filename)
	}
}

func TestExportService_EmployeeCalendar_UnknownEmployee(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.EmployeeCalendar(context.Background(), "ghost")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestExportService_EmployeeCalendar_Success(t *testing.T) {
	svc, employees, attendance := setupTestExportService()
	seedEmployee(employees, "E1", "Ann")
	seedAttendance(attendance, "E1", "2024-01-01")

	buf, filename, err := svc.EmployeeCalendar(context.Background(), "E1")
	if err != nil {
		t.Fatalf("EmployeeCalendar should succeed: %v", err)
	}
	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "END:VCALENDAR") {
		t.Error("expected an iCalendar document")
	}
	if !strings.Contains(content, "Ann: Present") {
		t.Errorf("expected the event summary in the feed:\n%s", content)
	}
	if filename != "attendance-E1.ics" {
		t.Errorf("unexpected filename %q", filename)
	}
}

func TestExportService_EmployeeCalendar_SkipsNonCalendarDates(t *testing.T) {
	svc, employees, attendance := setupTestExportService()
	seedEmployee(employees, "E1", "Ann")

	// a stored format-valid but non-calendar date has no event
	attendance.records = append(attendance.records, &model.AttendanceRecord{
		ID: 1, EmployeeID: "E1", Date: "2024-02-30",
		Status: model.StatusPresent, CreatedAt: time.Now().UTC(),
	})

	buf, _, err := svc.EmployeeCalendar(context.Background(), "E1")
	if err != nil {
		t.Fatalf("EmployeeCalendar should succeed: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Error("non-calendar dates should not produce events")
	}
}
