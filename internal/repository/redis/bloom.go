package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/creatorhub/domain"
)

const (
	KeyPostBloom = "bloom:post:ids"

	defaultBloomHashes = 3
)

// redisBloomRepo 用 Redis bitmap 实现的布隆过滤器，挡住对不存在帖子的请求
type redisBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
	hashes       int
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
		hashes:       defaultBloomHashes,
	}
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, KeyPostBloom, int64(offset), 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, 0, r.hashes)
	for _, offset := range r.offsets(id) {
		cmds = append(cmds, pipe.GetBit(ctx, KeyPostBloom, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// offsets 双重哈希: h1 + i*h2
func (r *redisBloomRepo) offsets(id int64) []uint64 {
	data := strconv.AppendInt(nil, id, 10)

	h1 := uint64(crc32.ChecksumIEEE(data))
	f := fnv.New64a()
	_, _ = f.Write(data)
	h2 := f.Sum64() | 1

	res := make([]uint64, r.hashes)
	for i := range res {
		res[i] = (h1 + uint64(i)*h2) % r.BloomBitSize
	}
	return res
}
