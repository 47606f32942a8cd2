package services

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/jobhunt/backend/internal/apperrors"
	"github.com/jobhunt/backend/internal/entities"
	"github.com/jobhunt/backend/internal/events"
	"github.com/jobhunt/backend/internal/repositories"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

type vacancyRepository interface {
	List(ctx context.Context, filter repositories.ListFilter, limit int, offset int) ([]entities.Vacancy, error)
	Count(ctx context.Context, filter repositories.ListFilter) (int64, error)
	GetByID(ctx context.Context, id uint) (*entities.Vacancy, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entities.Vacancy, error)
	Add(ctx context.Context, vacancy *entities.Vacancy) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	AppendSkills(ctx context.Context, vacancy *entities.Vacancy, skills []entities.Skill) error
	Remove(ctx context.Context, id uint) (int64, error)
	Like(ctx context.Context, ids []uint) error
}

type skillResolver interface {
	GetOrCreate(ctx context.Context, name string) (entities.Skill, error)
}

// Page is the one envelope shape every paginated endpoint uses.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	NumPages int   `json:"num_pages"`
}

type VacancyListItem struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Slug    string   `json:"slug"`
	Status  string   `json:"status"`
	Created string   `json:"created"`
	User    string   `json:"user"`
	Skills  []string `json:"skills"`
}

type VacancyDetail struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Slug    string   `json:"slug"`
	Status  string   `json:"status"`
	Created string   `json:"created"`
	User    uint     `json:"user"`
	Likes   int      `json:"likes"`
	Skills  []string `json:"skills"`
}

type CreateVacancyRequest struct {
	Text   string
	Slug   string
	Status string
	Skills []string
}

// UpdateVacancyRequest carries only the fields the caller wants to
// change; nil means "leave as is". Owner and creation date are not
// representable here on purpose.
type UpdateVacancyRequest struct {
	Text   *string
	Slug   *string
	Status *string
	Skills []string
}

type VacancyService struct {
	vacancies vacancyRepository
	skills    skillResolver
	bus       EventBus.Bus
	pageSize  int
}

func NewVacancyService(vacancies vacancyRepository, skills skillResolver, bus EventBus.Bus, pageSize int) *VacancyService {
	return &VacancyService{vacancies: vacancies, skills: skills, bus: bus, pageSize: pageSize}
}

func (s *VacancyService) List(ctx context.Context, filter repositories.ListFilter, page int) (*Page[VacancyListItem], error) {

	if page < 1 {
		page = 1
	}

	total, err := s.vacancies.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	vacancies, err := s.vacancies.List(ctx, filter, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}

	items := lo.Map(vacancies, func(vacancy entities.Vacancy, _ int) VacancyListItem {
		return VacancyListItem{
			ID:      vacancy.ID,
			Text:    vacancy.Text,
			Slug:    vacancy.Slug,
			Status:  string(vacancy.Status),
			Created: vacancy.Created.Format(dateLayout),
			User:    vacancy.User.Username,
			Skills:  vacancy.SkillNames(),
		}
	})

	return &Page[VacancyListItem]{
		Items:    items,
		Total:    total,
		NumPages: numPages(total, s.pageSize),
	}, nil
}

func (s *VacancyService) Get(ctx context.Context, id uint) (*VacancyDetail, error) {

	vacancy, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, apperrors.NotFound("vacancy not found")
	}
	return renderDetail(*vacancy), nil
}

func (s *VacancyService) Create(ctx context.Context, callerID uint, req CreateVacancyRequest) (*VacancyDetail, error) {

	status, err := entities.ToVacancyStatus(req.Status)
	if err != nil {
		return nil, apperrors.Validation("status", "must be one of: draft, open, closed")
	}
	if status == entities.StatusClosed {
		return nil, apperrors.Validation("status", "new vacancies may not be created closed")
	}

	skills, err := s.resolveSkills(ctx, req.Skills)
	if err != nil {
		return nil, err
	}

	vacancy := entities.Vacancy{
		UserID:  callerID,
		Text:    req.Text,
		Slug:    req.Slug,
		Status:  status,
		Created: time.Now(),
		Skills:  skills,
	}

	if err := s.vacancies.Add(ctx, &vacancy); err != nil {
		if repositories.IsUniqueViolation(err, "vacancies.slug") {
			return nil, apperrors.Validation("slug", "vacancy with this slug already exists")
		}
		return nil, err
	}

	s.bus.Publish(events.VacancyCreatedTopic, events.VacancyCreated{
		VacancyID: vacancy.ID,
		UserID:    vacancy.UserID,
		Slug:      vacancy.Slug,
	})

	return s.Get(ctx, vacancy.ID)
}

func (s *VacancyService) Update(ctx context.Context, id uint, req UpdateVacancyRequest) (*VacancyDetail, error) {

	existing, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("vacancy not found")
	}

	fields := map[string]any{}
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Status != nil {
		status, err := entities.ToVacancyStatus(*req.Status)
		if err != nil {
			return nil, apperrors.Validation("status", "must be one of: draft, open, closed")
		}
		fields["status"] = status
	}

	if len(fields) > 0 {
		if err := s.vacancies.Update(ctx, id, fields); err != nil {
			if repositories.IsUniqueViolation(err, "vacancies.slug") {
				return nil, apperrors.Validation("slug", "vacancy with this slug already exists")
			}
			return nil, err
		}
	}

	// Skill updates are additive: names not resubmitted keep their
	// association.
	skills, err := s.resolveSkills(ctx, req.Skills)
	if err != nil {
		return nil, err
	}
	if err := s.vacancies.AppendSkills(ctx, existing, skills); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *VacancyService) Delete(ctx context.Context, id uint) error {

	deleted, err := s.vacancies.Remove(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("vacancy not found")
	}
	return nil
}

// Like increments the counter for every matching id; ids that match
// nothing are ignored by design. Returns the matched rows
// post-increment.
func (s *VacancyService) Like(ctx context.Context, ids []uint) ([]VacancyDetail, error) {

	if err := s.vacancies.Like(ctx, ids); err != nil {
		return nil, err
	}

	vacancies, err := s.vacancies.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]VacancyDetail, 0, len(vacancies))
	for _, vacancy := range vacancies {
		s.bus.Publish(events.VacancyLikedTopic, events.VacancyLiked{
			VacancyID: vacancy.ID,
			Likes:     vacancy.Likes,
		})
		details = append(details, *renderDetail(vacancy))
	}
	return details, nil
}

func (s *VacancyService) resolveSkills(ctx context.Context, names []string) ([]entities.Skill, error) {

	trimmed := lo.FilterMap(names, func(name string, _ int) (string, bool) {
		name = strings.TrimSpace(name)
		return name, name != ""
	})

	skills := make([]entities.Skill, 0, len(trimmed))
	for _, name := range lo.Uniq(trimmed) {
		skill, err := s.skills.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func renderDetail(vacancy entities.Vacancy) *VacancyDetail {
	return &VacancyDetail{
		ID:      vacancy.ID,
		Text:    vacancy.Text,
		Slug:    vacancy.Slug,
		Status:  string(vacancy.Status),
		Created: vacancy.Created.Format(dateLayout),
		User:    vacancy.UserID,
		Likes:   vacancy.Likes,
		Skills:  vacancy.SkillNames(),
	}
}

func numPages(total int64, pageSize int) int {
	if total == 0 {
		return 1
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
