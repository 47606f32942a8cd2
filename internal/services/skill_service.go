package services

import (
	"context"
	"strings"

	"github.com/jobhunt/backend/internal/apperrors"
	"github.com/jobhunt/backend/internal/entities"
	"github.com/jobhunt/backend/internal/repositories"
	"github.com/samber/lo"
)

type skillRepository interface {
	List(ctx context.Context, limit int, offset int) ([]entities.Skill, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (*entities.Skill, error)
	Add(ctx context.Context, skill *entities.Skill) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Remove(ctx context.Context, id uint) (int64, error)
}

type SkillItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type SkillRequest struct {
	Name     string
	IsActive *bool
}

type SkillService struct {
	skills   skillRepository
	pageSize int
}

func NewSkillService(skills skillRepository, pageSize int) *SkillService {
	return &SkillService{skills: skills, pageSize: pageSize}
}

func (s *SkillService) List(ctx context.Context, page int) (*Page[SkillItem], error) {

	if page < 1 {
		page = 1
	}

	total, err := s.skills.Count(ctx)
	if err != nil {
		return nil, err
	}

	skills, err := s.skills.List(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}

	items := lo.Map(skills, func(skill entities.Skill, _ int) SkillItem {
		return renderSkill(skill)
	})

	return &Page[SkillItem]{Items: items, Total: total, NumPages: numPages(total, s.pageSize)}, nil
}

func (s *SkillService) Get(ctx context.Context, id uint) (*SkillItem, error) {

	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperrors.NotFound("skill not found")
	}
	item := renderSkill(*skill)
	return &item, nil
}

func (s *SkillService) Create(ctx context.Context, req SkillRequest) (*SkillItem, error) {

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name", "name is required")
	}

	skill := entities.Skill{Name: name, IsActive: true}
	if req.IsActive != nil {
		skill.IsActive = *req.IsActive
	}

	if err := s.skills.Add(ctx, &skill); err != nil {
		if repositories.IsUniqueViolation(err, "skills.name") {
			return nil, apperrors.Validation("name", "skill with this name already exists")
		}
		return nil, err
	}

	item := renderSkill(skill)
	return &item, nil
}

func (s *SkillService) Update(ctx context.Context, id uint, req SkillRequest) (*SkillItem, error) {

	existing, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("skill not found")
	}

	fields := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		fields["name"] = name
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) > 0 {
		if err := s.skills.Update(ctx, id, fields); err != nil {
			if repositories.IsUniqueViolation(err, "skills.name") {
				return nil, apperrors.Validation("name", "skill with this name already exists")
			}
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *SkillService) Delete(ctx context.Context, id uint) error {

	deleted, err := s.skills.Remove(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NotFound("skill not found")
	}
	return nil
}

func renderSkill(skill entities.Skill) SkillItem {
	return SkillItem{ID: skill.ID, Name: skill.Name, IsActive: skill.IsActive}
}
