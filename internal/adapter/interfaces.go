// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruslan Akhmetov

// Package adapter provides transport-layer abstractions for communicating
// with the remote driver service.
//
// The primary abstraction is [DriverClient], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDriverClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrInvalid] for 400).
// Transport-level failures (refused connections, DNS errors, timeouts) are
// wrapped in [ErrUnreachable].
package adapter

import (
	"context"

	"github.com/akhmetovr/go-grid-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/driver_client_mock.go -package=mock

// DriverClient defines transport-agnostic communication with the remote
// driver service. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package.
type DriverClient interface {
	// List fetches drivers matching the filter, ordered by sort. Pagination
	// (filter.Skip/Limit) is applied server-side.
	List(ctx context.Context, filter models.ListFilter, sort models.ListSort) ([]models.Driver, error)

	// Get fetches a single driver by id. Returns [ErrNotFound] (wrapped) if
	// the id is unknown to the service.
	Get(ctx context.Context, id string) (models.Driver, error)

	// Create registers a new driver and returns the stored record with its
	// service-assigned id. Returns [ErrInvalid] (wrapped) if the service
	// rejects the payload.
	Create(ctx context.Context, payload models.DriverPayload) (models.Driver, error)

	// Update applies a partial update to the driver identified by id and
	// returns the patched record. Returns [ErrNotFound] for unknown ids and
	// [ErrInvalid] if the patched record would violate a service invariant.
	Update(ctx context.Context, id string, patch models.DriverPatch) (models.Driver, error)

	// Delete removes the driver identified by id and returns the deleted
	// record. Returns [ErrNotFound] for unknown ids.
	Delete(ctx context.Context, id string) (models.Driver, error)

	// Ping probes the service health endpoint. A nil return means the
	// service is reachable and answering.
	Ping(ctx context.Context) error
}
