package repositories

import (
	"context"

	"github.com/jobhunt/backend/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Skills struct {
	db *gorm.DB
}

func NewSkillsRepository(db *gorm.DB) *Skills {
	return &Skills{db: db}
}

// GetOrCreate resolves a name to its catalog row, inserting one when
// absent. The insert is ON CONFLICT DO NOTHING against the unique name
// index, then the row is re-read, so two concurrent calls for a brand
// new name both end up with the same row.
func (repo *Skills) GetOrCreate(ctx context.Context, name string) (entities.Skill, error) {

	skill := entities.Skill{Name: name, IsActive: true}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&skill).Error
	if err != nil {
		return entities.Skill{}, errors.Wrap(err, "failed to create skill")
	}

	if skill.ID != 0 {
		return skill, nil
	}

	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		return entities.Skill{}, err
	}
	if existing == nil {
		return entities.Skill{}, errors.Errorf("skill %q neither created nor found", name)
	}
	return *existing, nil
}

func (repo *Skills) GetByName(ctx context.Context, name string) (*entities.Skill, error) {

	var skill entities.Skill
	err := repo.db.WithContext(ctx).First(&skill, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get skill by name")
	}
	return &skill, nil
}

func (repo *Skills) GetByID(ctx context.Context, id uint) (*entities.Skill, error) {

	var skill entities.Skill
	err := repo.db.WithContext(ctx).First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get skill")
	}
	return &skill, nil
}

func (repo *Skills) List(ctx context.Context, limit int, offset int) ([]entities.Skill, error) {

	var skills []entities.Skill
	err := repo.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&skills).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}
	return skills, nil
}

func (repo *Skills) Add(ctx context.Context, skill *entities.Skill) error {
	return repo.db.WithContext(ctx).Create(skill).Error
}

func (repo *Skills) Update(ctx context.Context, id uint, fields map[string]any) error {
	return repo.db.WithContext(ctx).
		Model(&entities.Skill{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (repo *Skills) Remove(ctx context.Context, id uint) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.Skill{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (repo *Skills) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Skill{}).Count(&count).Error
	return count, err
}
