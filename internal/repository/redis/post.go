package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository/cache"
)

const (
	KeyPopularPosts    = "post:popular:%d"
	KeyViewsBuffer     = "post:views:buffer"
	KeyViewsProcessing = "post:views:processing"

	// 物理过期时间要比逻辑过期长，过期后仍能先返回旧数据再异步重建
	popularPhysicalTTL = 24 * time.Hour
)

type postCache struct {
	client *redis.Client
}

var _ domain.PostCache = (*postCache)(nil)

func NewPostCache(client *redis.Client) *postCache {
	return &postCache{
		client,
	}
}

func (c *postCache) IncrViews(ctx context.Context, id int64) (int64, error) {
	return c.client.HIncrBy(ctx, KeyViewsBuffer, strconv.FormatInt(id, 10), 1).Result()
}

func (c *postCache) RestoreViews(ctx context.Context, id int64, views int64) error {
	return c.client.HIncrBy(ctx, KeyViewsBuffer, strconv.FormatInt(id, 10), views).Err()
}

// FetchAndResetViews 把缓冲区改名后读出，新的浏览量会写进新的缓冲区
func (c *postCache) FetchAndResetViews(ctx context.Context) (map[int64]int64, error) {
	result := make(map[int64]int64)
	err := c.client.Rename(ctx, KeyViewsBuffer, KeyViewsProcessing).Err()
	if err != nil {
		// 缓冲区不存在时 RENAME 返回 "ERR no such key"
		if errors.Is(err, redis.Nil) || err.Error() == "ERR no such key" {
			return result, nil
		}
		return result, err
	}

	data, err := c.client.HGetAll(ctx, KeyViewsProcessing).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, err
	}

	for idStr, viewsStr := range data {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Warnf("dropping malformed views entry %q: %v", idStr, err)
			continue
		}
		views, err := strconv.ParseInt(viewsStr, 10, 64)
		if err != nil {
			logrus.Warnf("dropping malformed views count for post %d: %v", id, err)
			continue
		}
		result[id] = views
	}

	if err := c.client.Del(ctx, KeyViewsProcessing).Err(); err != nil {
		logrus.Warnf("failed to delete %s: %v", KeyViewsProcessing, err)
	}

	return result, nil
}

func (c *postCache) GetPopular(ctx context.Context, limit int64) ([]domain.Post, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyPopularPosts, limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var wrapped cache.DataWithLogicalExpire
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, false, err
	}
	var posts []domain.Post
	if err := wrapped.Decode(&posts); err != nil {
		return nil, false, err
	}
	return posts, wrapped.IsLogicalExpired(), nil
}

func (c *postCache) SetPopular(ctx context.Context, limit int64, posts []domain.Post, ttl time.Duration) error {
	wrapped, err := cache.NewDataWithLogicalExpire(posts, ttl)
	if err != nil {
		return err
	}
	data, err := json.Marshal(wrapped)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyPopularPosts, limit), data, popularPhysicalTTL).Err()
}
