package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_VacancyCounts_GroupsAndKeepsUsersWithoutVacancies(t *testing.T) {

	dbCtx := newTestDbContext(t)
	first := addTestUser(t, dbCtx, "first")
	second := addTestUser(t, dbCtx, "second")
	addTestUser(t, dbCtx, "third")

	addTestVacancy(t, dbCtx, first, "a", "a")
	addTestVacancy(t, dbCtx, first, "b", "b")
	addTestVacancy(t, dbCtx, second, "c", "c")

	repo := NewUsersRepository(dbCtx.DB)

	counts, err := repo.VacancyCounts(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, counts, 3)

	byName := map[string]int64{}
	for _, count := range counts {
		byName[count.Username] = count.Vacancies
	}
	assert.Equal(t, int64(2), byName["first"])
	assert.Equal(t, int64(1), byName["second"])
	assert.Equal(t, int64(0), byName["third"])

	avg, err := repo.AvgVacancies(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, avg, 1e-9)
}

func Test_AvgVacancies_NoUsersYieldsZero(t *testing.T) {

	dbCtx := newTestDbContext(t)
	repo := NewUsersRepository(dbCtx.DB)

	avg, err := repo.AvgVacancies(context.Background())
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func Test_GetByUsername_MissingUserIsNil(t *testing.T) {

	dbCtx := newTestDbContext(t)
	repo := NewUsersRepository(dbCtx.DB)

	user, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}
