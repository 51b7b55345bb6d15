// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruslan Akhmetov

// Package store provides the durable client-side persistence layer: the
// driver cache and the pending operation log, both backed by a single bbolt
// file.
//
// Corrupt or missing stored data is never fatal for reads. The repositories
// degrade to an empty result so the client can always start, at worst with a
// cold cache.
package store

import (
	"context"

	"github.com/akhmetovr/go-grid-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CacheRepository is the durable snapshot of the last known driver
// collection. It stores whole snapshots; per-record updates go through
// read-modify-write on the caller's side.
type CacheRepository interface {
	// Drivers returns the cached collection. A missing or unreadable
	// snapshot yields an empty slice, not an error.
	Drivers(ctx context.Context) ([]models.Driver, error)

	// SaveDrivers atomically replaces the cached collection.
	SaveDrivers(ctx context.Context, drivers []models.Driver) error
}

// PendingLog is the durable queue of mutations performed while the remote
// service was unreachable. Operations are replayed in the order they were
// created.
type PendingLog interface {
	// Append adds an operation to the end of the log.
	Append(ctx context.Context, op models.PendingOperation) error

	// List returns all queued operations ordered by creation time. A
	// missing or unreadable log yields an empty slice, not an error.
	List(ctx context.Context) ([]models.PendingOperation, error)

	// Remove deletes the operation with the given id from the log. Removing
	// an unknown id is a no-op.
	Remove(ctx context.Context, opID string) error

	// Count reports the number of queued operations.
	Count(ctx context.Context) (int, error)
}
