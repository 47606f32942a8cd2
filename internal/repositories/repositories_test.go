package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jobhunt/backend/internal/entities"
	"github.com/stretchr/testify/require"
)

func newTestDbContext(t *testing.T) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func addTestUser(t *testing.T, dbCtx *DbContext, username string) entities.User {
	t.Helper()

	user := entities.User{Username: username, PasswordHash: "x", Role: entities.RoleHR}
	require.NoError(t, NewUsersRepository(dbCtx.DB).Add(context.Background(), &user))
	return user
}

func addTestVacancy(t *testing.T, dbCtx *DbContext, owner entities.User, slug string, text string, skillNames ...string) entities.Vacancy {
	t.Helper()

	skills := NewSkillsRepository(dbCtx.DB)
	resolved := make([]entities.Skill, 0, len(skillNames))
	for _, name := range skillNames {
		skill, err := skills.GetOrCreate(context.Background(), name)
		require.NoError(t, err)
		resolved = append(resolved, skill)
	}

	vacancy := entities.Vacancy{
		UserID:  owner.ID,
		Text:    text,
		Slug:    slug,
		Status:  entities.StatusOpen,
		Created: time.Now(),
		Skills:  resolved,
	}
	require.NoError(t, NewVacanciesRepository(dbCtx.DB).Add(context.Background(), &vacancy))
	return vacancy
}
