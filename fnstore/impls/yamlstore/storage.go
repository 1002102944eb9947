package yamlstore

import (
	"os"
	"path"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libpiecewise/fnstore"
	"github.com/sgostarter/libpiecewise/pwlinear"
	"gopkg.in/yaml.v3"
)

// NewYAMLFunctionStorage stores one yaml document per key under root.
func NewYAMLFunctionStorage(root string) fnstore.Storage {
	return &yamlFunctionStorageImpl{
		root: root,
	}
}

type yamlFunctionStorageImpl struct {
	root string
}

func (stg *yamlFunctionStorageImpl) fileNameByKey(key string) string {
	return path.Join(stg.root, key+".yaml")
}

func (stg *yamlFunctionStorageImpl) Load(key string) (points []pwlinear.Point[float64], err error) {
	d, err := os.ReadFile(stg.fileNameByKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = yaml.Unmarshal(d, &points)

	return
}

func (stg *yamlFunctionStorageImpl) Save(key string, points []pwlinear.Point[float64]) (err error) {
	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(points)
	if err != nil {
		return
	}

	err = os.WriteFile(stg.fileNameByKey(key), d, 0600)

	return
}

func (stg *yamlFunctionStorageImpl) Del(key string) error {
	err := os.Remove(stg.fileNameByKey(key))
	if os.IsNotExist(err) {
		err = commerr.ErrNotFound
	}

	return err
}

func (stg *yamlFunctionStorageImpl) Keys() (keys []string, err error) {
	entries, err := os.ReadDir(stg.root)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
		}

		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		keys = append(keys, strings.TrimSuffix(entry.Name(), ".yaml"))
	}

	return
}
