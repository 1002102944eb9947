package fmstore

import (
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libpiecewise/fnstore"
	"github.com/sgostarter/libpiecewise/pwlinear"
)

func NewFMFunctionStorage(root string, storage stg.FileStorage) fnstore.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmFunctionStorageImpl{
		fnStorage: mwf.NewMemWithFile[map[string][]pwlinear.Point[float64], mwf.Serial, mwf.Lock](
			make(map[string][]pwlinear.Point[float64]), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, "functions.json"), storage),
	}
}

type fmFunctionStorageImpl struct {
	fnStorage *mwf.MemWithFile[map[string][]pwlinear.Point[float64], mwf.Serial, mwf.Lock]
}

func (impl *fmFunctionStorageImpl) Load(key string) (points []pwlinear.Point[float64], err error) {
	impl.fnStorage.Read(func(m map[string][]pwlinear.Point[float64]) {
		if ps, ok := m[key]; ok {
			points = make([]pwlinear.Point[float64], len(ps))
			copy(points, ps)
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmFunctionStorageImpl) Save(key string, points []pwlinear.Point[float64]) error {
	return impl.fnStorage.Change(func(oldM map[string][]pwlinear.Point[float64]) (newM map[string][]pwlinear.Point[float64], err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string][]pwlinear.Point[float64])
		}

		ps := make([]pwlinear.Point[float64], len(points))
		copy(ps, points)

		newM[key] = ps

		return
	})
}

func (impl *fmFunctionStorageImpl) Del(key string) error {
	return impl.fnStorage.Change(func(oldM map[string][]pwlinear.Point[float64]) (newM map[string][]pwlinear.Point[float64], err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string][]pwlinear.Point[float64])
		}

		if _, ok := newM[key]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, key)

		return
	})
}

func (impl *fmFunctionStorageImpl) Keys() (keys []string, err error) {
	impl.fnStorage.Read(func(m map[string][]pwlinear.Point[float64]) {
		for k := range m {
			keys = append(keys, k)
		}
	})

	return
}
