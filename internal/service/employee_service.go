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

// ── employee business errors ──

var (
	ErrEmployeeFieldsRequired = errors.New("employeeId, fullName, email and department are required")
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrEmployeeIDExists       = errors.New("an employee with this ID already exists")
	ErrEmailExists            = errors.New("an employee with this email already exists")
	ErrEmployeeNotFound       = errors.New("employee not found")
)

// EmployeeService is the roster business interface.
type EmployeeService interface {
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService creates the EmployeeService.
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		result = append(result, toEmployeeResponse(&emps[i]))
	}
	return result, nil
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	id := strings.TrimSpace(req.EmployeeID)
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	department := strings.TrimSpace(req.Department)

	if id == "" || fullName == "" || email == "" || department == "" {
		return nil, ErrEmployeeFieldsRequired
	}
	if !validate.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	emp := &model.Employee{
		EmployeeID: id,
		FullName:   fullName,
		Email:      email,
		Department: department,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		// uniqueness lives in the store's constraints; a duplicate key
		// only needs disambiguating for the error message
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, lookupErr := s.repo.Employee.GetByID(ctx, id); lookupErr == nil {
				return nil, ErrEmployeeIDExists
			}
			return nil, ErrEmailExists
		}
		s.logger.Error("create employee failed", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(emp)
	return &resp, nil
}

func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	rows, err := s.repo.Employee.Delete(ctx, employeeID)
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrEmployeeNotFound
	}
	// attendance records are removed by the store's cascade rule
	return nil
}

func toEmployeeResponse(emp *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
