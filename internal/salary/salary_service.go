package salary

import (
	"context"
	"strings"
)

type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, id int64) (DeleteSalaryResponse, error)
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	Stats(ctx context.Context, q StatsQuery) (Stats, error)
	StatsByDepartment(ctx context.Context, q StatsQuery) ([]DepartmentStats, error)
	StatsByDepartmentAndSubDepartment(ctx context.Context, q StatsQuery) ([]SubDepartmentStats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error) {
	record := &Salary{
		Name:          req.Name,
		Salary:        *req.Salary,
		Currency:      strings.ToUpper(req.Currency),
		OnContract:    boolToInt(req.OnContract),
		Department:    req.Department,
		SubDepartment: req.SubDepartment,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return SalaryResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id int64) (DeleteSalaryResponse, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return DeleteSalaryResponse{}, err
	}

	return DeleteSalaryResponse{
		ID:      id,
		Deleted: rows > 0,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(records), nil
}

func (s *service) Stats(ctx context.Context, q StatsQuery) (Stats, error) {
	return s.repo.Stats(ctx, toFilter(q))
}

func (s *service) StatsByDepartment(ctx context.Context, q StatsQuery) ([]DepartmentStats, error) {
	rows, err := s.repo.StatsByDepartment(ctx, toFilter(q))
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []DepartmentStats{}
	}
	return rows, nil
}

func (s *service) StatsByDepartmentAndSubDepartment(ctx context.Context, q StatsQuery) ([]SubDepartmentStats, error) {
	rows, err := s.repo.StatsByDepartmentAndSubDepartment(ctx, toFilter(q))
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SubDepartmentStats{}
	}
	return rows, nil
}

// toFilter uppercases the currency at the boundary; the repository matches
// case-sensitively after normalization.
func toFilter(q StatsQuery) Filter {
	return Filter{
		Currency:   strings.ToUpper(q.Currency),
		OnContract: q.OnContract,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func mapToResponse(record Salary) SalaryResponse {
	return SalaryResponse{
		ID:            record.ID,
		Name:          record.Name,
		Salary:        record.Salary,
		Currency:      record.Currency,
		OnContract:    record.OnContract != 0,
		Department:    record.Department,
		SubDepartment: record.SubDepartment,
	}
}

func mapToListResponse(records []Salary) []SalaryResponse {
	res := make([]SalaryResponse, len(records))
	for i, record := range records {
		res[i] = mapToResponse(record)
	}
	return res
}
