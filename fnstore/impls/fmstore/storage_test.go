package fmstore

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libpiecewise/pwlinear"
	"github.com/stretchr/testify/assert"
)

func TestFMFunctionStorage(t *testing.T) {
	storage := NewFMFunctionStorage(t.TempDir(), nil)

	points := []pwlinear.Point[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1.5}}

	assert.Nil(t, storage.Save("cost", points))

	got, err := storage.Load("cost")
	assert.Nil(t, err)
	assert.Equal(t, points, got)

	keys, err := storage.Keys()
	assert.Nil(t, err)
	assert.Equal(t, []string{"cost"}, keys)

	_, err = storage.Load("nothing")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	assert.Nil(t, storage.Del("cost"))
	assert.ErrorIs(t, storage.Del("cost"), commerr.ErrNotFound)

	_, err = storage.Load("cost")
	assert.ErrorIs(t, err, commerr.ErrNotFound)
}

func TestFMFunctionStorageOverwrite(t *testing.T) {
	storage := NewFMFunctionStorage(t.TempDir(), nil)

	assert.Nil(t, storage.Save("cost", []pwlinear.Point[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}}))
	assert.Nil(t, storage.Save("cost", []pwlinear.Point[float64]{{X: 0, Y: 5}, {X: 1, Y: 5}}))

	got, err := storage.Load("cost")
	assert.Nil(t, err)
	assert.Equal(t, []pwlinear.Point[float64]{{X: 0, Y: 5}, {X: 1, Y: 5}}, got)
}
