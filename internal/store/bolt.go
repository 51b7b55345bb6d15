package store

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	bucketState = []byte("state")

	keyDriversCache = []byte("drivers-cache")
	keyPendingOps   = []byte("pending-operations")
)

// Storage owns the bbolt database file shared by the cache and the pending
// log repositories.
type Storage struct {
	db *bbolt.DB
}

// NewStorage opens (or creates) the bbolt file at path and initializes the
// state bucket.
func NewStorage(path string) (*Storage, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketState); err != nil {
			return fmt.Errorf("failed to create state bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database file.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Cache returns the driver cache repository backed by this storage.
func (s *Storage) Cache() CacheRepository {
	return &driverCache{db: s.db}
}

// PendingLog returns the pending operation log backed by this storage.
func (s *Storage) PendingLog() PendingLog {
	return &pendingLog{db: s.db}
}
