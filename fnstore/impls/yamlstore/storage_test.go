package yamlstore

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libpiecewise/pwlinear"
	"github.com/stretchr/testify/assert"
)

func TestYAMLFunctionStorage(t *testing.T) {
	storage := NewYAMLFunctionStorage(t.TempDir())

	points := []pwlinear.Point[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1.5}}

	assert.Nil(t, storage.Save("cost", points))
	assert.Nil(t, storage.Save("capacity", []pwlinear.Point[float64]{{X: 0, Y: 3}, {X: 2, Y: 3}}))

	got, err := storage.Load("cost")
	assert.Nil(t, err)
	assert.Equal(t, points, got)

	keys, err := storage.Keys()
	assert.Nil(t, err)
	assert.ElementsMatch(t, []string{"cost", "capacity"}, keys)

	_, err = storage.Load("nothing")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	assert.Nil(t, storage.Del("cost"))
	assert.ErrorIs(t, storage.Del("cost"), commerr.ErrNotFound)
}

func TestYAMLFunctionStorageEmptyRoot(t *testing.T) {
	storage := NewYAMLFunctionStorage(t.TempDir() + "/missing")

	keys, err := storage.Keys()
	assert.Nil(t, err)
	assert.Empty(t, keys)
}
