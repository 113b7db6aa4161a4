package kv

import (
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Store is the durable key/value contract the schedule store and the
// provisioner persist through. The remote service stays authoritative for
// folder state; Store only holds local bookkeeping.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("kv: base path unknown")
	}
	return &store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type store struct {
	d *diskv.Diskv
}

func (s *store) Get(key string) (string, bool, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (s *store) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}
