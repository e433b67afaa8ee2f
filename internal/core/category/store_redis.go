package category

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/inkpress/internal/platform/constants"
)

// listCacheTTL bounds staleness if an invalidation is ever missed.
const listCacheTTL = 10 * time.Minute

// CachedRepository decorates a [Repository] with a Redis read-through cache
// for the full category list. The list is small, read on nearly every page
// render, and changes rarely, which makes it the one query worth caching.
//
// Writes invalidate the cached list; single-record reads always go to the
// primary store.
type CachedRepository struct {
	inner Repository
	cache *redis.Client
}

// NewCachedRepository wraps the primary repository with the list cache.
func NewCachedRepository(inner Repository, cache *redis.Client) *CachedRepository {
	return &CachedRepository{inner: inner, cache: cache}
}

func (repository *CachedRepository) List(context context.Context) ([]*Category, error) {

	// 1. Try the cache. Any cache failure falls through to the primary
	// store; the cache is an optimization, never a dependency.
	if payload, err := repository.cache.Get(context, constants.RedisPrefixCategoryList).Result(); err == nil {
		var categories []*Category
		if err := json.Unmarshal([]byte(payload), &categories); err == nil {
			return categories, nil
		}
	}

	// 2. Read from the primary store
	categories, err := repository.inner.List(context)
	if err != nil {
		return nil, err
	}

	// 3. Repopulate the cache best-effort
	if payload, err := json.Marshal(categories); err == nil {
		repository.cache.Set(context, constants.RedisPrefixCategoryList, payload, listCacheTTL)
	}

	return categories, nil
}

func (repository *CachedRepository) Create(context context.Context, c *Category) error {
	if err := repository.inner.Create(context, c); err != nil {
		return err
	}
	repository.invalidate(context)
	return nil
}

func (repository *CachedRepository) Update(context context.Context, c *Category) error {
	if err := repository.inner.Update(context, c); err != nil {
		return err
	}
	repository.invalidate(context)
	return nil
}

func (repository *CachedRepository) Delete(context context.Context, id string) error {
	if err := repository.inner.Delete(context, id); err != nil {
		return err
	}
	repository.invalidate(context)
	return nil
}

func (repository *CachedRepository) FindByID(context context.Context, id string) (*Category, error) {
	return repository.inner.FindByID(context, id)
}

func (repository *CachedRepository) FindByName(context context.Context, name string) (*Category, error) {
	return repository.inner.FindByName(context, name)
}

func (repository *CachedRepository) invalidate(context context.Context) {
	repository.cache.Del(context, constants.RedisPrefixCategoryList)
}
