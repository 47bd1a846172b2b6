package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	usecasecontract "github.com/naolberhanu/LearnSphere/internal/usecase/contract"
)

const catalogKey = "courses:catalog"

// CourseCacheStore caches the public course catalog in redis.
type CourseCacheStore struct {
	rdb        *redis.Client
	catalogTTL time.Duration
}

func NewCourseCacheStore(rdb *redis.Client) *CourseCacheStore {
	return &CourseCacheStore{
		rdb:        rdb,
		catalogTTL: 15 * time.Minute,
	}
}

var _ usecasecontract.ICourseCache = (*CourseCacheStore)(nil)

func (c *CourseCacheStore) GetCatalog(ctx context.Context) ([]contract.CourseWithEducator, bool, error) {
	b, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var catalog []contract.CourseWithEducator
	if err := json.Unmarshal(b, &catalog); err != nil {
		return nil, false, nil
	}
	return catalog, true, nil
}

func (c *CourseCacheStore) SetCatalog(ctx context.Context, catalog []contract.CourseWithEducator) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, catalogKey, data, c.catalogTTL).Err()
}

func (c *CourseCacheStore) InvalidateCatalog(ctx context.Context) error {
	return c.rdb.Del(ctx, catalogKey).Err()
}
