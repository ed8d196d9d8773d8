package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comparee/internal/core/port/mocks"
)

func newCache(t *testing.T, next *mocks.MockCategoryResolver) (*CategoryResolver, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCategoryResolver(next, rdb, "comparee:", 10*time.Minute, logger), mr
}

func TestCategoryResolver_CachesResolution(t *testing.T) {
	next := mocks.NewMockCategoryResolver(t)
	next.EXPECT().
		ResolveCategorySlug(mock.Anything, "coding").
		Return([]string{"coding", "developer tools"}, nil).
		Once()

	c, mr := newCache(t, next)
	ctx := context.Background()

	first, err := c.ResolveCategorySlug(ctx, "coding")
	require.NoError(t, err)
	second, err := c.ResolveCategorySlug(ctx, "coding")
	require.NoError(t, err)

	assert.Equal(t, []string{"coding", "developer tools"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 10*time.Minute, mr.TTL("comparee:category-slug:coding"))
}

func TestCategoryResolver_CachesUnknownSlugAsEmpty(t *testing.T) {
	next := mocks.NewMockCategoryResolver(t)
	next.EXPECT().ResolveCategorySlug(mock.Anything, "nope").Return(nil, nil).Once()

	c, _ := newCache(t, next)

	for range 2 {
		names, err := c.ResolveCategorySlug(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, names)
	}
}

func TestCategoryResolver_ExpiredEntryIsReloaded(t *testing.T) {
	next := mocks.NewMockCategoryResolver(t)
	next.EXPECT().ResolveCategorySlug(mock.Anything, "video").Return([]string{"video"}, nil).Twice()

	c, mr := newCache(t, next)
	ctx := context.Background()

	_, err := c.ResolveCategorySlug(ctx, "video")
	require.NoError(t, err)
	mr.FastForward(11 * time.Minute)
	_, err = c.ResolveCategorySlug(ctx, "video")
	require.NoError(t, err)
}

func TestCategoryResolver_RedisDownFallsThrough(t *testing.T) {
	next := mocks.NewMockCategoryResolver(t)
	next.EXPECT().ResolveCategorySlug(mock.Anything, "video").Return([]string{"video"}, nil).Once()

	c, mr := newCache(t, next)
	mr.Close()

	names, err := c.ResolveCategorySlug(context.Background(), "video")
	require.NoError(t, err)
	assert.Equal(t, []string{"video"}, names)
}

func TestCategoryResolver_ResolverErrorIsReturned(t *testing.T) {
	next := mocks.NewMockCategoryResolver(t)
	next.EXPECT().ResolveCategorySlug(mock.Anything, "x").Return(nil, errors.New("db down"))

	c, mr := newCache(t, next)

	_, err := c.ResolveCategorySlug(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, mr.Exists("comparee:category-slug:x"))
}
