package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/jobhunt/backend/internal/entities"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_List_TextFilterIsCaseInsensitive(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	addTestVacancy(t, dbCtx, owner, "go-dev", "Senior GoLang developer")
	addTestVacancy(t, dbCtx, owner, "py-dev", "Python developer")

	repo := NewVacanciesRepository(dbCtx.DB)

	found, err := repo.List(context.Background(), ListFilter{Text: "golang"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "go-dev", found[0].Slug)
}

func Test_List_SkillFiltersAreUnionedAndCombinedWithText(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	addTestVacancy(t, dbCtx, owner, "backend", "backend engineer", "Go", "Postgres")
	addTestVacancy(t, dbCtx, owner, "frontend", "frontend engineer", "React")
	addTestVacancy(t, dbCtx, owner, "devops", "devops engineer", "Docker")

	repo := NewVacanciesRepository(dbCtx.DB)

	found, err := repo.List(context.Background(), ListFilter{Skills: []string{"go", "react"}}, 10, 0)
	require.NoError(t, err)
	slugs := lo.Map(found, func(v entities.Vacancy, _ int) string { return v.Slug })
	assert.ElementsMatch(t, []string{"backend", "frontend"}, slugs)

	found, err = repo.List(context.Background(), ListFilter{Text: "backend", Skills: []string{"go", "react"}}, 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "backend", found[0].Slug)
}

func Test_List_MatchingSeveralSkillsReturnsRowOnce(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	addTestVacancy(t, dbCtx, owner, "backend", "backend engineer", "Go", "Golang")

	repo := NewVacanciesRepository(dbCtx.DB)

	found, err := repo.List(context.Background(), ListFilter{Skills: []string{"go"}}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	count, err := repo.Count(context.Background(), ListFilter{Skills: []string{"go"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func Test_List_PagesReconstructWholeSetWithoutDuplicates(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	for _, slug := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		addTestVacancy(t, dbCtx, owner, slug, "text "+slug)
	}

	repo := NewVacanciesRepository(dbCtx.DB)
	pageSize := 4

	var seen []uint
	for page := 1; page <= 3; page++ {
		found, err := repo.List(context.Background(), ListFilter{}, pageSize, (page-1)*pageSize)
		require.NoError(t, err)
		for _, vacancy := range found {
			seen = append(seen, vacancy.ID)
		}
	}

	assert.Len(t, seen, 9)
	assert.Len(t, lo.Uniq(seen), 9)

	beyond, err := repo.List(context.Background(), ListFilter{}, pageSize, 3*pageSize)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func Test_Add_DuplicateSlugFailsAtomically(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	addTestVacancy(t, dbCtx, owner, "taken", "first")

	repo := NewVacanciesRepository(dbCtx.DB)
	err := repo.Add(context.Background(), &entities.Vacancy{
		UserID: owner.ID,
		Text:   "second",
		Slug:   "taken",
		Status: entities.StatusOpen,
	})

	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err, "vacancies.slug"))

	count, err := repo.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func Test_Like_IncrementsOnlyMatchingRows(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	first := addTestVacancy(t, dbCtx, owner, "one", "first")
	second := addTestVacancy(t, dbCtx, owner, "two", "second")

	repo := NewVacanciesRepository(dbCtx.DB)
	unknownID := second.ID + 100

	require.NoError(t, repo.Like(context.Background(), []uint{first.ID, unknownID}))
	require.NoError(t, repo.Like(context.Background(), []uint{first.ID}))

	liked, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)

	untouched, err := repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, untouched.Likes)
}

func Test_Like_ConcurrentCallsLoseNoIncrements(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	vacancy := addTestVacancy(t, dbCtx, owner, "hot", "popular")

	// One pooled connection makes concurrent writers queue instead of
	// tripping over sqlite's single-writer lock.
	sqlDB, err := dbCtx.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewVacanciesRepository(dbCtx.DB)
	const likers = 16

	errs := make(chan error, likers)
	var wg sync.WaitGroup
	for i := 0; i < likers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Like(context.Background(), []uint{vacancy.ID})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	liked, err := repo.GetByID(context.Background(), vacancy.ID)
	require.NoError(t, err)
	require.NotNil(t, liked)
	assert.Equal(t, likers, liked.Likes)
}

func Test_Remove_DeletesAssociationsButKeepsSkills(t *testing.T) {

	dbCtx := newTestDbContext(t)
	owner := addTestUser(t, dbCtx, "hr1")
	vacancy := addTestVacancy(t, dbCtx, owner, "gone", "to delete", "Go")

	repo := NewVacanciesRepository(dbCtx.DB)

	deleted, err := repo.Remove(context.Background(), vacancy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	missing, err := repo.GetByID(context.Background(), vacancy.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	var joinRows int64
	require.NoError(t, dbCtx.DB.Table("vacancy_skills").Where("vacancy_id = ?", vacancy.ID).Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	skill, err := NewSkillsRepository(dbCtx.DB).GetByName(context.Background(), "Go")
	require.NoError(t, err)
	assert.NotNil(t, skill)

	deleted, err = repo.Remove(context.Background(), vacancy.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
