// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruslan Akhmetov

// Package service implements the offline-first synchronization core: the
// reconciler that replays and merges queued mutations, the collection
// controller that routes reads and writes between the remote service and the
// local store, and the connectivity monitor that drives the online/offline
// transitions.
package service

import (
	"context"

	"github.com/akhmetovr/go-grid-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Reconciler replays the pending operation log against the remote service
// and merges queued mutations into server listings.
type Reconciler interface {
	// MergeWithLocal overlays the pending operation log onto a fresh server
	// listing so reads reflect unsynced local mutations. When the log is
	// empty the server listing is persisted to the cache verbatim; otherwise
	// the merged view is returned without being persisted.
	MergeWithLocal(ctx context.Context, serverDrivers []models.Driver) ([]models.Driver, error)

	// SyncWithServer replays all queued operations in creation order. A
	// failed operation stays queued and does not block later ones. After the
	// pass the cache is re-seeded from the authoritative server listing on a
	// best-effort basis.
	SyncWithServer(ctx context.Context) (models.SyncResult, error)
}

// ConnectivitySource reports whether the remote service is currently
// considered reachable.
type ConnectivitySource interface {
	Online() bool
}

// Controller is the single entry point the UI layer talks to. Every
// operation transparently routes to the remote service or the local store
// depending on connectivity.
type Controller interface {
	// Fetch lists drivers. Online it merges the server listing with queued
	// local mutations; offline (or when the service fails mid-read) it
	// serves the cache with filter and sort applied locally.
	Fetch(ctx context.Context, filter models.ListFilter, sort models.ListSort) ([]models.Driver, error)

	// Get returns a single driver by id.
	Get(ctx context.Context, id string) (models.Driver, error)

	// Add creates a driver. Offline it synthesizes a local id, patches the
	// cache and queues the creation for later replay.
	Add(ctx context.Context, payload models.DriverPayload) (models.Driver, error)

	// Update applies a partial update to the driver identified by id.
	Update(ctx context.Context, id string, patch models.DriverPatch) (models.Driver, error)

	// Delete removes the driver identified by id.
	Delete(ctx context.Context, id string) (models.Driver, error)

	// Sync triggers a replay of the pending operation log. Returns
	// [ErrSyncInFlight] when a replay is already running.
	Sync(ctx context.Context) (models.SyncResult, error)

	// PendingCount reports the number of queued operations.
	PendingCount(ctx context.Context) (int, error)

	// OnConnectivityChange reacts to a connectivity transition. Exactly one
	// automatic sync is started per offline-to-online transition.
	OnConnectivityChange(ctx context.Context, online bool)
}
