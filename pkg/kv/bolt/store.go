// Package bolt implements the kv port on a bbolt file, the durable
// on-device backend.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/leapbw/leapauth/pkg/kv"
)

const defaultBucket = "leap"

var _ kv.Store = (*Store)(nil)

// Store wraps a bbolt database holding a single bucket of JSON values.
type Store struct {
	db     *bbolt.DB
	bucket []byte
	log    *zap.Logger
}

// Open initializes the bbolt file and ensures the bucket exists. log may be
// nil.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	bucket := []byte(defaultBucket)
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{db: db, bucket: bucket, log: log}, nil
}

func (s *Store) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), payload)
	})
}

func (s *Store) Get(ctx context.Context, key string, out any) error {
	var payload []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v == nil {
			return kv.ErrKeyNotFound
		}
		// v is only valid inside the transaction
		payload = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(payload, out); err != nil {
		s.log.Warn("corrupt value in store", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to decode value for %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(s.bucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(s.bucket)
		return err
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
