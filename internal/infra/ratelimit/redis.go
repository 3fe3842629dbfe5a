package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrStore ошибка хранилища счетчиков
var ErrStore = errors.New("ratelimit: store error")

// RedisLimiter фиксированное окно на счетчиках Redis: INCR ключа окна и TTL на длину окна
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter создает лимитер: не больше limit запросов с ключа за window
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow увеличивает счетчик текущего окна и сообщает, укладывается ли запрос в лимит
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 || l.window <= 0 {
		return true, nil
	}

	windowKey := l.bucketKey(key, l.now())

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, windowKey)
		pipe.Expire(ctx, windowKey, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return incr.Val() <= int64(l.limit), nil
}

// bucketKey ключ окна: prefix:key:номер окна
func (l *RedisLimiter) bucketKey(key string, now time.Time) string {
	bucket := now.UnixNano() / int64(l.window)
	return l.prefix + ":" + key + ":" + strconv.FormatInt(bucket, 10)
}

// Ping проверяет доступность Redis
func (l *RedisLimiter) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}
