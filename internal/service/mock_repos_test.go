package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/spandan012/HRMS-liteApp/internal/model"
	"github.com/spandan012/HRMS-liteApp/internal/repository"
)

// ── Mock EmployeeRepository ──
//
// Map-backed, mirroring the store's unique constraints: a duplicate id or
// email surfaces as gorm.ErrDuplicatedKey the way TranslateError does.

type mockEmployeeRepo struct {
	employees []*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	for _, e := range m.employees {
		if e.EmployeeID == emp.EmployeeID || e.Email == emp.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.employees = append(m.employees, emp)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.EmployeeID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	result := make([]model.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, *e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) (int64, error) {
	for i, e := range m.employees {
		if e.EmployeeID == id {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []*model.AttendanceRecord
	nextID  uint
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{nextID: 1}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	for _, r := range m.records {
		if r.EmployeeID == record.EmployeeID && r.Date == record.Date {
			return gorm.ErrDuplicatedKey
		}
	}
	record.ID = m.nextID
	m.nextID++
	m.records = append(m.records, record)
	return nil
}

func (m *mockAttendanceRepo) ListByEmployee(_ context.Context, employeeID, startDate, endDate string) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.EmployeeID != employeeID {
			continue
		}
		if startDate != "" && r.Date < startDate {
			continue
		}
		if endDate != "" && r.Date > endDate {
			continue
		}
		result = append(result, *r)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result, nil
}

func (m *mockAttendanceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

func (m *mockAttendanceRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, r := range m.records {
		if r.Status == status {
			count++
		}
	}
	return count, nil
}

// removeByEmployee emulates the store's cascade rule for tests that delete
// an employee through the mock.
func (m *mockAttendanceRepo) removeByEmployee(employeeID string) {
	kept := m.records[:0]
	for _, r := range m.records {
		if r.EmployeeID != employeeID {
			kept = append(kept, r)
		}
	}
	m.records = kept
}

// ── Mock SummaryRepository ──
//
// Computes the left-join aggregate from the other two mocks.

type mockSummaryRepo struct {
	employees  *mockEmployeeRepo
	attendance *mockAttendanceRepo
}

func newMockSummaryRepo(employees *mockEmployeeRepo, attendance *mockAttendanceRepo) *mockSummaryRepo {
	return &mockSummaryRepo{employees: employees, attendance: attendance}
}

func (m *mockSummaryRepo) PresentByEmployee(_ context.Context) ([]repository.EmployeePresenceRow, error) {
	rows := make([]repository.EmployeePresenceRow, 0, len(m.employees.employees))
	for _, e := range m.employees.employees {
		var presentDays int64
		for _, r := range m.attendance.records {
			if r.EmployeeID == e.EmployeeID && r.Status == model.StatusPresent {
				presentDays++
			}
		}
		rows = append(rows, repository.EmployeePresenceRow{
			EmployeeID:  e.EmployeeID,
			FullName:    e.FullName,
			PresentDays: presentDays,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PresentDays != rows[j].PresentDays {
			return rows[i].PresentDays > rows[j].PresentDays
		}
		return rows[i].FullName < rows[j].FullName
	})
	return rows, nil
}

// ── shared test wiring ──

func newTestRepository() (*repository.Repository, *mockEmployeeRepo, *mockAttendanceRepo) {
	employees := newMockEmployeeRepo()
	attendance := newMockAttendanceRepo()
	repo := &repository.Repository{
		Employee:   employees,
		Attendance: attendance,
		Summary:    newMockSummaryRepo(employees, attendance),
	}
	return repo, employees, attendance
}
