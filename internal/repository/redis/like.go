package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/creatorhub/domain"
)

const (
	KeyUserLikedPosts = "post:user:%d:likedPosts"

	likedSetTTL = 30 * time.Minute
	// 空集合也要占住 key, 否则每次都当作未缓存
	likedSetSentinel = 0
)

// KEYS = {该用户喜欢的文章集合}
// ARGV = {本次文章ID, 过期秒数}
var toggleLikeScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1 -- 未缓存, 需要加载缓存
	end

	local liked = 1
	if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
		redis.call('SREM', KEYS[1], ARGV[1])
		liked = 0
	else
		redis.call('SADD', KEYS[1], ARGV[1])
	end
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	return liked
`)

type likeCache struct {
	client *redis.Client
}

var _ domain.LikeCache = (*likeCache)(nil)

func NewLikeCache(client *redis.Client) *likeCache {
	return &likeCache{client}
}

func (c *likeCache) ToggleLike(ctx context.Context, like domain.PostLike) (bool, error) {
	keys := []string{fmt.Sprintf(KeyUserLikedPosts, like.UserID)}
	res, err := toggleLikeScript.Run(ctx, c.client, keys, like.PostID, int64(likedSetTTL/time.Second)).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

func (c *likeCache) SetUserLikedPosts(ctx context.Context, uid int64, postIDs []int64) error {
	members := make([]any, 0, len(postIDs)+1)
	members = append(members, likedSetSentinel)
	for _, id := range postIDs {
		members = append(members, id)
	}

	key := fmt.Sprintf(KeyUserLikedPosts, uid)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, likedSetTTL)
		return nil
	})
	return err
}
