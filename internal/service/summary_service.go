package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spandan012/HRMS-liteApp/internal/dto"
	"github.com/spandan012/HRMS-liteApp/internal/model"
	"github.com/spandan012/HRMS-liteApp/internal/repository"
)

// SummaryService computes the store-wide summary. Every request recomputes
// from current store contents.
type SummaryService interface {
	Get(ctx context.Context) (*dto.SummaryResponse, error)
}

type summaryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSummaryService creates the SummaryService.
func NewSummaryService(repo *repository.Repository, logger *zap.Logger) SummaryService {
	return &summaryService{repo: repo, logger: logger}
}

func (s *summaryService) Get(ctx context.Context) (*dto.SummaryResponse, error) {
	employees, err := s.repo.Employee.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, err
	}

	records, err := s.repo.Attendance.Count(ctx)
	if err != nil {
		s.logger.Error("count attendance records failed", zap.Error(err))
		return nil, err
	}

	present, err := s.repo.Attendance.CountByStatus(ctx, model.StatusPresent)
	if err != nil {
		s.logger.Error("count present records failed", zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.Summary.PresentByEmployee(ctx)
	if err != nil {
		s.logger.Error("present-by-employee query failed", zap.Error(err))
		return nil, err
	}

	presence := make([]dto.EmployeePresence, 0, len(rows))
	for _, row := range rows {
		presence = append(presence, dto.EmployeePresence{
			EmployeeID:  row.EmployeeID,
			FullName:    row.FullName,
			PresentDays: row.PresentDays,
		})
	}

	return &dto.SummaryResponse{
		Totals: dto.SummaryTotals{
			Employees: employees,
			Records:   records,
			Present:   present,
		},
		PresentByEmployee: presence,
	}, nil
}
