package local

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

//go:generate mockgen -source=$GOFILE -destination=kv_mocks_test.go -package=local_test

// KV is a minimal string key-value store. Get reports absence through its
// second return value, not through an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// DirKV stores each key as one file in a single directory. Writes go through
// a temp file plus rename, so a crashed write never leaves a half-written
// value behind.
type DirKV struct {
	mutex sync.RWMutex
	root  string
}

func NewDirKV(root string) (*DirKV, error) {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create kv root dir: %w", err)
	}
	return &DirKV{root: root}, nil
}

func (kv *DirKV) path(key string) string {
	return filepath.Join(kv.root, key)
}

func (kv *DirKV) Get(key string) (string, bool, error) {
	kv.mutex.RLock()
	defer kv.mutex.RUnlock()

	data, err := os.ReadFile(kv.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %s: %w", key, err)
	}
	return string(data), true, nil
}

func (kv *DirKV) Set(key, value string) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()

	tmpPath := kv.path(key) + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, kv.path(key)); err != nil {
		return fmt.Errorf("commit key %s: %w", key, err)
	}
	return nil
}

func (kv *DirKV) Delete(key string) error {
	kv.mutex.Lock()
	defer kv.mutex.Unlock()

	if err := os.Remove(kv.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}
