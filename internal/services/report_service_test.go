package services

import (
	"context"
	"testing"

	"github.com/jobhunt/backend/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ByUser_AvgCoversWholePopulationNotThePage(t *testing.T) {

	env := newTestEnv(t)

	poster := env.addUser(t, "poster", entities.RoleHR)
	for i := 0; i < 6; i++ {
		env.addUser(t, "idle"+string(rune('a'+i)), entities.RoleEmployee)
	}

	slugs := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, slug := range slugs {
		_, err := env.vacancies.Create(context.Background(), poster.ID, CreateVacancyRequest{
			Text: "text " + slug, Slug: slug, Status: "open",
		})
		require.NoError(t, err)
	}

	first, err := env.reports.ByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), first.Total)
	assert.Equal(t, 2, first.NumPages)
	assert.Len(t, first.Items, testPageSize)

	second, err := env.reports.ByUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, second.Items, 3)

	// 7 vacancies over 7 users, whichever page is requested.
	assert.InDelta(t, 1.0, first.Avg, 1e-9)
	assert.InDelta(t, first.Avg, second.Avg, 1e-9)
}

func Test_ByUser_EmptyDatabaseYieldsZeroAvg(t *testing.T) {

	env := newTestEnv(t)

	report, err := env.reports.ByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.Zero(t, report.Avg)
	assert.Equal(t, 1, report.NumPages)
}
