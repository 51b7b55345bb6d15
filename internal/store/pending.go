package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/akhmetovr/go-grid-keeper/models"
)

// pendingLog persists queued operations as a single JSON array under the
// pending-operations key. Append and Remove use read-modify-write inside one
// bbolt transaction, so concurrent writers never lose entries.
type pendingLog struct {
	db *bbolt.DB
}

func (l *pendingLog) Append(ctx context.Context, op models.PendingOperation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := op.Validate(); err != nil {
		return fmt.Errorf("append pending operation: %w", err)
	}

	err := l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		ops := decodeOps(bucket.Get(keyPendingOps))
		ops = append(ops, op)

		raw, err := json.Marshal(ops)
		if err != nil {
			return fmt.Errorf("encode pending operations: %w", err)
		}
		return bucket.Put(keyPendingOps, raw)
	})
	if err != nil {
		return fmt.Errorf("write pending operations: %w", err)
	}

	return nil
}

func (l *pendingLog) List(ctx context.Context) ([]models.PendingOperation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ops []models.PendingOperation
	err := l.db.View(func(tx *bbolt.Tx) error {
		ops = decodeOps(tx.Bucket(bucketState).Get(keyPendingOps))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read pending operations: %w", err)
	}

	// replay order is creation order
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].CreatedAt < ops[j].CreatedAt
	})

	return ops, nil
}

func (l *pendingLog) Remove(ctx context.Context, opID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		ops := decodeOps(bucket.Get(keyPendingOps))

		kept := ops[:0]
		for _, op := range ops {
			if op.ID != opID {
				kept = append(kept, op)
			}
		}

		raw, err := json.Marshal(kept)
		if err != nil {
			return fmt.Errorf("encode pending operations: %w", err)
		}
		return bucket.Put(keyPendingOps, raw)
	})
	if err != nil {
		return fmt.Errorf("write pending operations: %w", err)
	}

	return nil
}

func (l *pendingLog) Count(ctx context.Context) (int, error) {
	ops, err := l.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(ops), nil
}

// decodeOps tolerates a missing or corrupt log by returning an empty slice.
func decodeOps(raw []byte) []models.PendingOperation {
	ops := []models.PendingOperation{}
	if raw == nil {
		return ops
	}
	if err := json.Unmarshal(raw, &ops); err != nil {
		return []models.PendingOperation{}
	}
	return ops
}
