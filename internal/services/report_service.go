package services

import (
	"context"

	"github.com/jobhunt/backend/internal/repositories"
	"github.com/samber/lo"
)

type userReportRepository interface {
	VacancyCounts(ctx context.Context, limit int, offset int) ([]repositories.UserVacancyCount, error)
	Count(ctx context.Context) (int64, error)
	AvgVacancies(ctx context.Context) (float64, error)
}

type UserVacancies struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Vacancies int64  `json:"vacancies"`
}

// Report is a page of per-user vacancy counts plus the global average
// over the whole user population, not just the requested page.
type Report struct {
	Items    []UserVacancies `json:"items"`
	Total    int64           `json:"total"`
	NumPages int             `json:"num_pages"`
	Avg      float64         `json:"avg"`
}

type ReportService struct {
	users    userReportRepository
	pageSize int
}

func NewReportService(users userReportRepository, pageSize int) *ReportService {
	return &ReportService{users: users, pageSize: pageSize}
}

func (s *ReportService) ByUser(ctx context.Context, page int) (*Report, error) {

	if page < 1 {
		page = 1
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.users.VacancyCounts(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}

	avg, err := s.users.AvgVacancies(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(counts, func(count repositories.UserVacancyCount, _ int) UserVacancies {
		return UserVacancies{ID: count.ID, Name: count.Username, Vacancies: count.Vacancies}
	})

	return &Report{
		Items:    items,
		Total:    total,
		NumPages: numPages(total, s.pageSize),
		Avg:      avg,
	}, nil
}
