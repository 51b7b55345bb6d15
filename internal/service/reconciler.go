package service

import (
	"context"
	"fmt"

	"github.com/akhmetovr/go-grid-keeper/internal/adapter"
	"github.com/akhmetovr/go-grid-keeper/internal/logger"
	"github.com/akhmetovr/go-grid-keeper/internal/store"
	"github.com/akhmetovr/go-grid-keeper/models"
)

type reconciler struct {
	cache   store.CacheRepository
	pending store.PendingLog
	remote  adapter.DriverClient
	log     *logger.Logger
}

// NewReconciler builds the reconciler that owns merge and replay semantics
// for the pending operation log.
func NewReconciler(cache store.CacheRepository, pending store.PendingLog, remote adapter.DriverClient, log *logger.Logger) Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &reconciler{cache: cache, pending: pending, remote: remote, log: log}
}

func (r *reconciler) MergeWithLocal(ctx context.Context, serverDrivers []models.Driver) ([]models.Driver, error) {
	ops, err := r.pending.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending operations: %w", err)
	}

	if len(ops) == 0 {
		// nothing queued: the server listing is authoritative
		if err := r.cache.SaveDrivers(ctx, serverDrivers); err != nil {
			r.log.Warn().Err(err).Msg("failed to persist server listing to cache")
		}
		return serverDrivers, nil
	}

	merged := make([]models.Driver, len(serverDrivers))
	copy(merged, serverDrivers)

	// drivers created offline live only in the cache until their queued
	// creation is replayed
	cached, err := r.cache.Drivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cached drivers: %w", err)
	}
	for _, d := range cached {
		if models.IsLocalID(d.ID) {
			merged = append(merged, d)
		}
	}

	for _, op := range ops {
		switch op.Type {
		case models.OperationUpdate:
			if models.IsLocalID(op.DriverID) || op.Patch == nil {
				continue
			}
			for i := range merged {
				if merged[i].ID == op.DriverID {
					op.Patch.ApplyTo(&merged[i])
					break
				}
			}
		case models.OperationDelete:
			if models.IsLocalID(op.DriverID) {
				continue
			}
			for i := range merged {
				if merged[i].ID == op.DriverID {
					merged = append(merged[:i], merged[i+1:]...)
					break
				}
			}
		}
	}

	// the merged view is ephemeral: the cache keeps reflecting local state
	// until the queue is replayed
	return merged, nil
}

func (r *reconciler) SyncWithServer(ctx context.Context) (models.SyncResult, error) {
	ops, err := r.pending.List(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("list pending operations: %w", err)
	}

	if len(ops) == 0 {
		return models.SyncResult{Success: true, Message: "no pending operations to sync"}, nil
	}

	r.log.Info().Int("operations", len(ops)).Msg("replaying pending operations")

	var synced, failed int
	for _, op := range ops {
		if err := r.replay(ctx, op); err != nil {
			failed++
			r.log.Warn().
				Err(err).
				Str("operation", op.ID).
				Str("type", string(op.Type)).
				Msg("replay failed, operation stays queued")
			continue
		}

		if err := r.pending.Remove(ctx, op.ID); err != nil {
			r.log.Error().Err(err).Str("operation", op.ID).Msg("failed to dequeue replayed operation")
		}
		synced++
	}

	r.reseedCache(ctx)

	result := models.SyncResult{Synced: synced, Failed: failed}
	if failed == 0 {
		result.Success = true
		result.Message = fmt.Sprintf("successfully synced %d operations", synced)
	} else {
		result.Message = fmt.Sprintf("synced %d operations, %d operations failed", synced, failed)
	}

	return result, nil
}

// replay applies a single queued operation to the remote service. Operations
// targeting ids the service has never seen cannot be applied and fail
// without a network round trip.
func (r *reconciler) replay(ctx context.Context, op models.PendingOperation) error {
	if err := op.Validate(); err != nil {
		return fmt.Errorf("malformed operation: %w", err)
	}

	switch op.Type {
	case models.OperationAdd:
		_, err := r.remote.Create(ctx, *op.Payload)
		return err
	case models.OperationUpdate:
		if models.IsLocalID(op.DriverID) {
			return fmt.Errorf("%w: %s", ErrLocalOnlyDriver, op.DriverID)
		}
		_, err := r.remote.Update(ctx, op.DriverID, *op.Patch)
		return err
	case models.OperationDelete:
		if models.IsLocalID(op.DriverID) {
			return fmt.Errorf("%w: %s", ErrLocalOnlyDriver, op.DriverID)
		}
		_, err := r.remote.Delete(ctx, op.DriverID)
		return err
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}
}

// reseedCache refreshes the cache from the authoritative server listing.
// Best effort: a failure here never fails the sync pass that preceded it.
func (r *reconciler) reseedCache(ctx context.Context) {
	drivers, err := r.remote.List(ctx, models.ListFilter{}, models.ListSort{})
	if err != nil {
		r.log.Warn().Err(err).Msg("failed to refresh cache after sync")
		return
	}
	if err := r.cache.SaveDrivers(ctx, drivers); err != nil {
		r.log.Warn().Err(err).Msg("failed to persist refreshed cache after sync")
	}
}
