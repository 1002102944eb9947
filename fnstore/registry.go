package fnstore

import (
	"fmt"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpiecewise/pwlinear"
)

func NewRegistry(storage Storage, cacheDuration time.Duration, logger l.Wrapper) *Registry {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "fnRegistry"))

	if storage == nil {
		logger.Fatal("no storage")
	}

	if cacheDuration <= 0 {
		cacheDuration = time.Minute
	}

	return &Registry{
		logger:    logger,
		storage:   storage,
		cachedFns: cache.New(cacheDuration, cacheDuration),
	}
}

// Registry fronts a Storage with validation and a TTL cache of constructed
// functions.
type Registry struct {
	logger    l.Wrapper
	storage   Storage
	cachedFns *cache.Cache
}

// Put stores the function's breakpoints under key. An empty key gets a
// generated one; the key used is returned.
func (impl *Registry) Put(key string, fn *pwlinear.Function[float64]) (string, error) {
	if fn == nil {
		return "", commerr.ErrInvalidArgument
	}

	if key == "" {
		key = fmt.Sprintf("%d", snowflake.ID())
	}

	if err := impl.storage.Save(key, fn.Points()); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save function failed")

		return "", err
	}

	impl.cachedFns.Set(key, fn, cache.DefaultExpiration)

	return key, nil
}

func (impl *Registry) Get(key string) (*pwlinear.Function[float64], error) {
	if i, ok := impl.cachedFns.Get(key); ok {
		return i.(*pwlinear.Function[float64]), nil
	}

	points, err := impl.storage.Load(key)
	if err != nil {
		return nil, err
	}

	fn, err := pwlinear.New(points)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("stored function invalid")

		return nil, err
	}

	impl.cachedFns.Set(key, fn, cache.DefaultExpiration)

	return fn, nil
}

func (impl *Registry) Del(key string) error {
	impl.cachedFns.Delete(key)

	return impl.storage.Del(key)
}

func (impl *Registry) Keys() ([]string, error) {
	return impl.storage.Keys()
}
