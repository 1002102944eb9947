package fnstore

import "github.com/sgostarter/libpiecewise/pwlinear"

// Storage persists named breakpoint sequences. Implementations return
// commerr.ErrNotFound for missing keys.
type Storage interface {
	Load(key string) ([]pwlinear.Point[float64], error)
	Save(key string, points []pwlinear.Point[float64]) error
	Del(key string) error
	Keys() ([]string, error)
}
