package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/akhmetovr/go-grid-keeper/models"
)

// driverCache persists the last known driver collection as a single JSON
// array under the drivers-cache key.
type driverCache struct {
	db *bbolt.DB
}

func (c *driverCache) Drivers(ctx context.Context) ([]models.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	drivers := []models.Driver{}
	err := c.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketState).Get(keyDriversCache)
		if raw == nil {
			return nil
		}
		// a snapshot that fails to decode counts as a cold cache
		if err := json.Unmarshal(raw, &drivers); err != nil {
			drivers = []models.Driver{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read drivers cache: %w", err)
	}

	return drivers, nil
}

func (c *driverCache) SaveDrivers(ctx context.Context, drivers []models.Driver) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}

	raw, err := json.Marshal(drivers)
	if err != nil {
		return fmt.Errorf("encode drivers cache: %w", err)
	}

	err = c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Put(keyDriversCache, raw)
	})
	if err != nil {
		return fmt.Errorf("write drivers cache: %w", err)
	}

	return nil
}
