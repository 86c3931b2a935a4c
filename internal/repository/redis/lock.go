package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

const KeySimilarityLock = "lock:similarity:rebuild"

// 只有持有者才能释放锁，避免误删别人的锁
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

type rebuildLock struct {
	client   *redis.Client
	ttl      time.Duration
	newToken func() string
}

var _ domain.RebuildLocker = (*rebuildLock)(nil)

// NewRebuildLock returns a cross-process lock for similarity rebuilds. ttl bounds
// how long a crashed holder can block the next run.
func NewRebuildLock(client *redis.Client, ttl time.Duration) *rebuildLock {
	return &rebuildLock{
		client:   client,
		ttl:      ttl,
		newToken: uuid.NewString,
	}
}

func (l *rebuildLock) Acquire(ctx context.Context) (func(context.Context) error, error) {
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, KeySimilarityLock, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrRebuildInProgress
	}

	release := func(ctx context.Context) error {
		res, err := releaseLockScript.Run(ctx, l.client, []string{KeySimilarityLock}, token).Int()
		if err != nil {
			return err
		}
		if res == 0 {
			logrus.Warnf("similarity lock %s expired before release", KeySimilarityLock)
		}
		return nil
	}
	return release, nil
}
