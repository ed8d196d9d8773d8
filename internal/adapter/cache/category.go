package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"comparee/internal/core/port"
)

// CategoryResolver caches slug resolutions of an underlying resolver in
// Redis. Cache failures fall through to the underlying resolver.
type CategoryResolver struct {
	next   port.CategoryResolver
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewCategoryResolver(next port.CategoryResolver, rdb redis.UniversalClient, prefix string, ttl time.Duration, logger *slog.Logger) *CategoryResolver {
	return &CategoryResolver{next: next, rdb: rdb, prefix: prefix + "category-slug:", ttl: ttl, logger: logger}
}

func (c *CategoryResolver) ResolveCategorySlug(ctx context.Context, slug string) ([]string, error) {
	key := c.prefix + slug
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var names []string
		if err = json.Unmarshal(raw, &names); err == nil {
			return names, nil
		}
		c.logger.Warn("category cache entry corrupt", slog.String("slug", slug), slog.Any("error", err))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("category cache read failed", slog.String("slug", slug), slog.Any("error", err))
	}

	names, err := c.next.ResolveCategorySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	data, _ := json.Marshal(names)
	if err = c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("category cache write failed", slog.String("slug", slug), slog.Any("error", err))
	}
	return names, nil
}
