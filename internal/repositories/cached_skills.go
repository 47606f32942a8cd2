package repositories

import (
	"context"
	"time"

	"github.com/jobhunt/backend/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type skillResolver interface {
	GetOrCreate(ctx context.Context, name string) (entities.Skill, error)
}

// CachedSkills caches name lookups in front of the catalog. Safe
// because skill rows are immutable once created.
type CachedSkills struct {
	repo  skillResolver
	cache *gocache.Cache
}

func NewCachedSkills(repo skillResolver) *CachedSkills {
	return &CachedSkills{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedSkills) GetOrCreate(ctx context.Context, name string) (entities.Skill, error) {
	if value, found := c.cache.Get(name); found {
		return value.(entities.Skill), nil
	}

	skill, err := c.repo.GetOrCreate(ctx, name)
	if err == nil {
		if cacheErr := c.cache.Add(name, skill, gocache.DefaultExpiration); cacheErr != nil {
			return skill, nil
		}
	}

	return skill, err
}
