package repositories

import (
	"context"
	"strings"

	"github.com/jobhunt/backend/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Vacancies struct {
	db *gorm.DB
}

func NewVacanciesRepository(db *gorm.DB) *Vacancies {
	return &Vacancies{db: db}
}

// ListFilter narrows the vacancy collection: Text matches the body
// case-insensitively, Skills match associated skill names and are
// OR-combined between themselves, AND-combined with Text.
type ListFilter struct {
	Text   string
	Skills []string
}

func (repo *Vacancies) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&entities.Vacancy{})

	if filter.Text != "" {
		query = query.Where("LOWER(vacancies.text) LIKE ?", "%"+strings.ToLower(filter.Text)+"%")
	}

	if len(filter.Skills) > 0 {
		query = query.
			Joins("JOIN vacancy_skills ON vacancy_skills.vacancy_id = vacancies.id").
			Joins("JOIN skills ON skills.id = vacancy_skills.skill_id")

		var skillsQuery *gorm.DB
		for _, skill := range filter.Skills {
			pattern := "%" + strings.ToLower(skill) + "%"
			if skillsQuery == nil {
				skillsQuery = repo.db.Where("LOWER(skills.name) LIKE ?", pattern)
			} else {
				skillsQuery = skillsQuery.Or("LOWER(skills.name) LIKE ?", pattern)
			}
		}
		query = query.Where(skillsQuery)
	}

	return query
}

func (repo *Vacancies) List(ctx context.Context, filter ListFilter, limit int, offset int) ([]entities.Vacancy, error) {

	var ids []uint
	err := repo.filtered(ctx, filter).
		Distinct("vacancies.id").
		Order("vacancies.id").
		Limit(limit).
		Offset(offset).
		Pluck("vacancies.id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vacancies")
	}

	return repo.GetByIDs(ctx, ids)
}

func (repo *Vacancies) Count(ctx context.Context, filter ListFilter) (int64, error) {

	var count int64
	err := repo.filtered(ctx, filter).
		Distinct("vacancies.id").
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count vacancies")
	}
	return count, nil
}

func (repo *Vacancies) GetByID(ctx context.Context, id uint) (*entities.Vacancy, error) {

	var vacancy entities.Vacancy
	err := repo.db.WithContext(ctx).
		Preload("Skills").
		Preload("User").
		First(&vacancy, "vacancies.id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get vacancy")
	}
	return &vacancy, nil
}

func (repo *Vacancies) GetByIDs(ctx context.Context, ids []uint) ([]entities.Vacancy, error) {

	vacancies := make([]entities.Vacancy, 0, len(ids))
	err := repo.db.WithContext(ctx).
		Preload("Skills").
		Preload("User").
		Order("vacancies.id").
		Find(&vacancies, "vacancies.id IN ?", ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vacancies by ids")
	}
	return vacancies, nil
}

// Add inserts the vacancy together with its pre-resolved skill
// associations in a single transaction, so a slug collision leaves no
// partial write.
func (repo *Vacancies) Add(ctx context.Context, vacancy *entities.Vacancy) error {
	return repo.db.WithContext(ctx).Create(vacancy).Error
}

func (repo *Vacancies) Update(ctx context.Context, id uint, fields map[string]any) error {
	return repo.db.WithContext(ctx).
		Model(&entities.Vacancy{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// AppendSkills adds associations without touching existing ones; the
// composite unique index on the join table makes re-adding a no-op.
func (repo *Vacancies) AppendSkills(ctx context.Context, vacancy *entities.Vacancy, skills []entities.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	return repo.db.WithContext(ctx).
		Model(vacancy).
		Association("Skills").
		Append(&skills)
}

func (repo *Vacancies) Remove(ctx context.Context, id uint) (int64, error) {

	var deleted int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM vacancy_skills WHERE vacancy_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&entities.Vacancy{}, "id = ?", id)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to remove vacancy")
	}
	return deleted, nil
}

// Like increments the counter server-side in one statement, so
// concurrent likes on the same row never lose an update. Unknown ids
// simply match nothing.
func (repo *Vacancies) Like(ctx context.Context, ids []uint) error {
	return repo.db.WithContext(ctx).
		Model(&entities.Vacancy{}).
		Where("id IN ?", ids).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
}

func (repo *Vacancies) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Vacancy{}).Count(&count).Error
	return count, err
}
