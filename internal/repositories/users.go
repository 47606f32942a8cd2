package repositories

import (
	"context"

	"github.com/jobhunt/backend/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *entities.User) error {
	return repo.db.WithContext(ctx).Create(user).Error
}

func (repo *Users) GetByID(ctx context.Context, id uint) (*entities.User, error) {

	var user entities.User
	err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get user")
	}
	return &user, nil
}

func (repo *Users) GetByUsername(ctx context.Context, username string) (*entities.User, error) {

	var user entities.User
	err := repo.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get user by username")
	}
	return &user, nil
}

func (repo *Users) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

// UserVacancyCount is one row of the grouped report: a user and how
// many vacancies it owns.
type UserVacancyCount struct {
	ID        uint
	Username  string
	Vacancies int64
}

// VacancyCounts computes per-user counts with one grouped query; the
// left join keeps users owning nothing, at zero.
func (repo *Users) VacancyCounts(ctx context.Context, limit int, offset int) ([]UserVacancyCount, error) {

	var counts []UserVacancyCount
	err := repo.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.id AS id, users.username AS username, COUNT(vacancies.id) AS vacancies").
		Joins("LEFT JOIN vacancies ON vacancies.user_id = users.id").
		Group("users.id, users.username").
		Order("users.id").
		Limit(limit).
		Offset(offset).
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vacancies per user")
	}
	return counts, nil
}

// AvgVacancies is the arithmetic mean of per-user vacancy counts over
// the entire user population.
func (repo *Users) AvgVacancies(ctx context.Context) (float64, error) {

	var avg *float64
	err := repo.db.WithContext(ctx).
		Raw("SELECT AVG(cnt) FROM (" +
			"SELECT COUNT(vacancies.id) AS cnt FROM users " +
			"LEFT JOIN vacancies ON vacancies.user_id = users.id " +
			"GROUP BY users.id)").
		Scan(&avg).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to average vacancies per user")
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
