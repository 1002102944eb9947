package fnstore

import (
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libpiecewise/pwlinear"
	"github.com/stretchr/testify/assert"
)

type memStorage struct {
	m map[string][]pwlinear.Point[float64]
}

func newMemStorage() *memStorage {
	return &memStorage{
		m: make(map[string][]pwlinear.Point[float64]),
	}
}

func (stg *memStorage) Load(key string) ([]pwlinear.Point[float64], error) {
	points, ok := stg.m[key]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	return points, nil
}

func (stg *memStorage) Save(key string, points []pwlinear.Point[float64]) error {
	stg.m[key] = points

	return nil
}

func (stg *memStorage) Del(key string) error {
	if _, ok := stg.m[key]; !ok {
		return commerr.ErrNotFound
	}

	delete(stg.m, key)

	return nil
}

func (stg *memStorage) Keys() (keys []string, err error) {
	for k := range stg.m {
		keys = append(keys, k)
	}

	return
}

func testFunction(t *testing.T) *pwlinear.Function[float64] {
	fn, err := pwlinear.FromPairs([][2]float64{{0, 0}, {1, 1}, {2, 1.5}})
	assert.Nil(t, err)

	return fn
}

func TestRegistryPutGet(t *testing.T) {
	storage := newMemStorage()
	registry := NewRegistry(storage, time.Minute, nil)

	fn := testFunction(t)

	key, err := registry.Put("cost", fn)
	assert.Nil(t, err)
	assert.Equal(t, "cost", key)

	got, err := registry.Get("cost")
	assert.Nil(t, err)
	assert.Equal(t, fn.Points(), got.Points())

	keys, err := registry.Keys()
	assert.Nil(t, err)
	assert.Equal(t, []string{"cost"}, keys)
}

func TestRegistryGeneratedKey(t *testing.T) {
	registry := NewRegistry(newMemStorage(), time.Minute, nil)

	key, err := registry.Put("", testFunction(t))
	assert.Nil(t, err)
	assert.NotEqual(t, "", key)

	_, err = registry.Get(key)
	assert.Nil(t, err)
}

func TestRegistryGetCached(t *testing.T) {
	storage := newMemStorage()
	registry := NewRegistry(storage, time.Minute, nil)

	_, err := registry.Put("cost", testFunction(t))
	assert.Nil(t, err)

	// drop the backing record; the cached function must still be served
	delete(storage.m, "cost")

	got, err := registry.Get("cost")
	assert.Nil(t, err)
	assert.NotNil(t, got)
}

func TestRegistryGetMissing(t *testing.T) {
	registry := NewRegistry(newMemStorage(), time.Minute, nil)

	_, err := registry.Get("nothing")
	assert.ErrorIs(t, err, commerr.ErrNotFound)
}

func TestRegistryInvalidStored(t *testing.T) {
	storage := newMemStorage()
	storage.m["broken"] = []pwlinear.Point[float64]{{X: 0, Y: 0}}

	registry := NewRegistry(storage, time.Minute, nil)

	_, err := registry.Get("broken")
	assert.ErrorIs(t, err, pwlinear.ErrTooFewPoints)
}

func TestRegistryDel(t *testing.T) {
	storage := newMemStorage()
	registry := NewRegistry(storage, time.Minute, nil)

	_, err := registry.Put("cost", testFunction(t))
	assert.Nil(t, err)

	assert.Nil(t, registry.Del("cost"))

	_, err = registry.Get("cost")
	assert.ErrorIs(t, err, commerr.ErrNotFound)
}
