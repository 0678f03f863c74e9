package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickcourt/quickcourt/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/quickcourt/quickcourt/pkg/redis Interface

// IRedisCache stores JSON-encoded values with a TTL in seconds. Plain
// strings are stored as-is so cached tokens round-trip without quoting.
type IRedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type iRedisCacheImpl struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisCache(client *redis.Client, log logger.Interface) IRedisCache {
	return &iRedisCacheImpl{
		client: client,
		log:    log,
	}
}

// Clear deletes every key matching the glob prefix, scanning instead of KEYS
// so large keyspaces do not block the server.
func (i *iRedisCacheImpl) Clear(ctx context.Context, prefix string) (err error) {
	iter := i.client.Scan(ctx, 0, prefix, 0).Iterator()

	for iter.Next(ctx) {
		if err = i.client.Del(ctx, iter.Val()).Err(); err != nil {
			i.log.Error("redis - clear - failed to delete cache", err)

			return err
		}
	}

	return iter.Err()
}

func (i *iRedisCacheImpl) Delete(ctx context.Context, key string) error {
	if err := i.client.Del(ctx, key).Err(); err != nil {
		i.log.Error("redis - delete - failed to delete cache", err)

		return err
	}

	return nil
}

func (i *iRedisCacheImpl) Get(ctx context.Context, key string, value any) (err error) {
	cacheValue, err := i.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case *string:
		*v = cacheValue
	default:
		if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
			i.log.Error("redis - get - failed to unmarshal value", err)

			return err
		}
	}

	return nil
}

func (i *iRedisCacheImpl) Save(ctx context.Context, key string, value any, duration int) (err error) {
	var strValue []byte
	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)
		if err != nil {
			i.log.Error("redis - save - failed to marshal value", err)

			return err
		}
	}

	if err = i.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err(); err != nil {
		i.log.Error("redis - save - failed to save value", err)

		return err
	}

	i.log.Debug("redis - save - saved value", key)

	return nil
}
