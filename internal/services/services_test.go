package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/jobhunt/backend/internal/entities"
	"github.com/jobhunt/backend/internal/repositories"
	"github.com/stretchr/testify/require"
)

const testPageSize = 4

type testEnv struct {
	dbCtx     *repositories.DbContext
	vacancies *VacancyService
	skills    *SkillService
	reports   *ReportService
	auth      *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbCtx, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })

	vacancies := repositories.NewVacanciesRepository(dbCtx.DB)
	skills := repositories.NewSkillsRepository(dbCtx.DB)
	users := repositories.NewUsersRepository(dbCtx.DB)

	return &testEnv{
		dbCtx:     dbCtx,
		vacancies: NewVacancyService(vacancies, repositories.NewCachedSkills(skills), EventBus.New(), testPageSize),
		skills:    NewSkillService(skills, testPageSize),
		reports:   NewReportService(users, testPageSize),
		auth:      NewAuthService(users, "test-secret", testTokenTTL),
	}
}

func (env *testEnv) addUser(t *testing.T, username string, role entities.Role) entities.User {
	t.Helper()

	user := entities.User{Username: username, PasswordHash: "x", Role: role}
	require.NoError(t, repositories.NewUsersRepository(env.dbCtx.DB).Add(context.Background(), &user))
	return user
}
