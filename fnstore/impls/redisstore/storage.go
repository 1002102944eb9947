package redisstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpiecewise/fnstore"
	"github.com/sgostarter/libpiecewise/pwlinear"
	"github.com/spf13/cast"
)

func NewRedisFunctionStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) fnstore.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "functionStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &functionStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type functionStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *functionStorageImpl) functionKey(key string) string {
	return impl.preKey + ":fn:" + key
}

func (impl *functionStorageImpl) keySetKey() string {
	return impl.preKey + ":fns"
}

func (impl *functionStorageImpl) Load(key string) ([]pwlinear.Point[float64], error) {
	v, err := impl.redisCli.Get(context.Background(), impl.functionKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, commerr.ErrNotFound
		}

		return nil, err
	}

	var points []pwlinear.Point[float64]
	if err = json.Unmarshal([]byte(v), &points); err != nil {
		return nil, err
	}

	return points, nil
}

func (impl *functionStorageImpl) Save(key string, points []pwlinear.Point[float64]) error {
	d, err := json.Marshal(points)
	if err != nil {
		return err
	}

	return saveFunctionScript.Run(context.Background(), impl.redisCli,
		[]string{impl.functionKey(key), impl.keySetKey()}, d, key).Err()
}

func (impl *functionStorageImpl) Del(key string) error {
	v, err := delFunctionScript.Run(context.Background(), impl.redisCli,
		[]string{impl.functionKey(key), impl.keySetKey()}, key).Result()
	if err != nil {
		return err
	}

	if cast.ToInt(v) == 0 {
		return commerr.ErrNotFound
	}

	return nil
}

func (impl *functionStorageImpl) Keys() ([]string, error) {
	return impl.redisCli.SMembers(context.Background(), impl.keySetKey()).Result()
}
