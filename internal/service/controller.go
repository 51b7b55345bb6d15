package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/akhmetovr/go-grid-keeper/internal/adapter"
	"github.com/akhmetovr/go-grid-keeper/internal/logger"
	"github.com/akhmetovr/go-grid-keeper/internal/store"
	"github.com/akhmetovr/go-grid-keeper/models"
)

type controller struct {
	cache      store.CacheRepository
	pending    store.PendingLog
	remote     adapter.DriverClient
	reconciler Reconciler
	net        ConnectivitySource
	log        *logger.Logger

	syncInFlight atomic.Bool
}

// NewController wires the collection controller. It is the only component
// that consults connectivity; everything below it is branch-free.
func NewController(
	cache store.CacheRepository,
	pending store.PendingLog,
	remote adapter.DriverClient,
	reconciler Reconciler,
	net ConnectivitySource,
	log *logger.Logger,
) Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &controller{
		cache:      cache,
		pending:    pending,
		remote:     remote,
		reconciler: reconciler,
		net:        net,
		log:        log,
	}
}

func (c *controller) Fetch(ctx context.Context, filter models.ListFilter, sort models.ListSort) ([]models.Driver, error) {
	if !c.net.Online() {
		return c.fetchLocal(ctx, filter, sort)
	}

	drivers, err := c.remote.List(ctx, filter, sort)
	if err != nil {
		c.log.Warn().Err(err).Msg("remote listing failed, serving cache")
		return c.fetchLocal(ctx, filter, sort)
	}

	merged, err := c.reconciler.MergeWithLocal(ctx, drivers)
	if err != nil {
		c.log.Warn().Err(err).Msg("merge with local state failed, serving cache")
		return c.fetchLocal(ctx, filter, sort)
	}

	return merged, nil
}

func (c *controller) Get(ctx context.Context, id string) (models.Driver, error) {
	// locally synthesized ids are unknown to the service
	if c.net.Online() && !models.IsLocalID(id) {
		d, err := c.remote.Get(ctx, id)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, adapter.ErrUnreachable) {
			return models.Driver{}, err
		}
		c.log.Warn().Err(err).Str("driver", id).Msg("remote get failed, serving cache")
	}

	return c.getLocal(ctx, id)
}

func (c *controller) Add(ctx context.Context, payload models.DriverPayload) (models.Driver, error) {
	if c.net.Online() {
		created, err := c.remote.Create(ctx, payload)
		if err == nil {
			if err := c.appendToCache(ctx, created); err != nil {
				c.log.Warn().Err(err).Str("driver", created.ID).Msg("failed to cache created driver")
			}
			return created, nil
		}
		if !errors.Is(err, adapter.ErrUnreachable) {
			return models.Driver{}, err
		}
		c.log.Warn().Err(err).Msg("remote create failed, queuing locally")
	}

	return c.addLocal(ctx, payload)
}

func (c *controller) Update(ctx context.Context, id string, patch models.DriverPatch) (models.Driver, error) {
	if c.net.Online() && !models.IsLocalID(id) {
		updated, err := c.remote.Update(ctx, id, patch)
		if err == nil {
			if err := c.patchCache(ctx, updated); err != nil {
				c.log.Warn().Err(err).Str("driver", id).Msg("failed to cache updated driver")
			}
			return updated, nil
		}
		if !errors.Is(err, adapter.ErrUnreachable) {
			return models.Driver{}, err
		}
		c.log.Warn().Err(err).Str("driver", id).Msg("remote update failed, queuing locally")
	}

	return c.updateLocal(ctx, id, patch)
}

func (c *controller) Delete(ctx context.Context, id string) (models.Driver, error) {
	if c.net.Online() && !models.IsLocalID(id) {
		deleted, err := c.remote.Delete(ctx, id)
		if err == nil {
			if err := c.removeFromCache(ctx, id); err != nil {
				c.log.Warn().Err(err).Str("driver", id).Msg("failed to drop deleted driver from cache")
			}
			return deleted, nil
		}
		if !errors.Is(err, adapter.ErrUnreachable) {
			return models.Driver{}, err
		}
		c.log.Warn().Err(err).Str("driver", id).Msg("remote delete failed, queuing locally")
	}

	return c.deleteLocal(ctx, id)
}

func (c *controller) Sync(ctx context.Context) (models.SyncResult, error) {
	// one replay pass at a time; the log is not safe to drain concurrently
	if !c.syncInFlight.CompareAndSwap(false, true) {
		return models.SyncResult{}, ErrSyncInFlight
	}
	defer c.syncInFlight.Store(false)

	return c.reconciler.SyncWithServer(ctx)
}

func (c *controller) PendingCount(ctx context.Context) (int, error) {
	return c.pending.Count(ctx)
}

func (c *controller) OnConnectivityChange(ctx context.Context, online bool) {
	if !online {
		c.log.Info().Msg("connectivity lost, switching to offline mode")
		return
	}

	count, err := c.pending.Count(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to inspect pending log on reconnect")
		return
	}
	if count == 0 {
		c.log.Info().Msg("connectivity restored, nothing queued")
		return
	}

	c.log.Info().Int("pending", count).Msg("connectivity restored, replaying queued operations")

	result, err := c.Sync(ctx)
	switch {
	case errors.Is(err, ErrSyncInFlight):
		c.log.Debug().Msg("sync already running, skipping automatic replay")
	case err != nil:
		c.log.Warn().Err(err).Msg("automatic sync failed")
	default:
		c.log.Info().
			Int("synced", result.Synced).
			Int("failed", result.Failed).
			Msg(result.Message)
	}
}

// ── offline paths ──

func (c *controller) fetchLocal(ctx context.Context, filter models.ListFilter, sort models.ListSort) ([]models.Driver, error) {
	drivers, err := c.cache.Drivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cached drivers: %w", err)
	}

	drivers = models.FilterDrivers(drivers, filter)
	models.SortDrivers(drivers, sort)
	return models.PageDrivers(drivers, filter.Skip, filter.Limit), nil
}

func (c *controller) getLocal(ctx context.Context, id string) (models.Driver, error) {
	drivers, err := c.cache.Drivers(ctx)
	if err != nil {
		return models.Driver{}, fmt.Errorf("read cached drivers: %w", err)
	}

	for _, d := range drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Driver{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, id)
}

func (c *controller) addLocal(ctx context.Context, payload models.DriverPayload) (models.Driver, error) {
	d := payload.WithID(models.NewLocalID())

	if err := c.appendToCache(ctx, d); err != nil {
		return models.Driver{}, err
	}
	if err := c.pending.Append(ctx, models.NewAddOperation(payload)); err != nil {
		return models.Driver{}, fmt.Errorf("queue add operation: %w", err)
	}

	c.log.Debug().Str("driver", d.ID).Msg("driver created offline")
	return d, nil
}

// updateLocal accepts the write optimistically: the patch lands in the cache
// when the target is cached and the operation is queued either way, so a
// record deleted offline moments earlier still produces a queued Update.
func (c *controller) updateLocal(ctx context.Context, id string, patch models.DriverPatch) (models.Driver, error) {
	drivers, err := c.cache.Drivers(ctx)
	if err != nil {
		return models.Driver{}, fmt.Errorf("read cached drivers: %w", err)
	}

	updated := models.Driver{ID: id}
	patch.ApplyTo(&updated)

	for i := range drivers {
		if drivers[i].ID == id {
			patch.ApplyTo(&drivers[i])
			updated = drivers[i]
			if err := c.cache.SaveDrivers(ctx, drivers); err != nil {
				return models.Driver{}, fmt.Errorf("write cached drivers: %w", err)
			}
			break
		}
	}

	if err := c.pending.Append(ctx, models.NewUpdateOperation(id, patch)); err != nil {
		return models.Driver{}, fmt.Errorf("queue update operation: %w", err)
	}

	c.log.Debug().Str("driver", id).Msg("driver updated offline")
	return updated, nil
}

func (c *controller) deleteLocal(ctx context.Context, id string) (models.Driver, error) {
	drivers, err := c.cache.Drivers(ctx)
	if err != nil {
		return models.Driver{}, fmt.Errorf("read cached drivers: %w", err)
	}

	deleted := models.Driver{ID: id}
	for i := range drivers {
		if drivers[i].ID == id {
			deleted = drivers[i]
			drivers = append(drivers[:i], drivers[i+1:]...)
			if err := c.cache.SaveDrivers(ctx, drivers); err != nil {
				return models.Driver{}, fmt.Errorf("write cached drivers: %w", err)
			}
			break
		}
	}

	if err := c.pending.Append(ctx, models.NewDeleteOperation(id)); err != nil {
		return models.Driver{}, fmt.Errorf("queue delete operation: %w", err)
	}

	c.log.Debug().Str("driver", id).Msg("driver deleted offline")
	return deleted, nil
}

// ── cache maintenance ──

func (c *controller) appendToCache(ctx context.Context, d models.Driver) error {
	drivers, err := c.cache.Drivers(ctx)
	if err != nil {
		return fmt.Errorf("read cached drivers: %w", err)
	}
	return c.cache.SaveDrivers(ctx, append(drivers, d))
}

func (c *controller) patchCache(ctx context.Context, updated models.Driver) error {
	drivers, err := c.cache.Drivers(ctx)
	if err != nil {
		return fmt.Errorf("read cached drivers: %w", err)
	}
	for i := range drivers {
		if drivers[i].ID == updated.ID {
			drivers[i] = updated
			return c.cache.SaveDrivers(ctx, drivers)
		}
	}
	// not cached yet, e.g. updated right after a cold start
	return c.cache.SaveDrivers(ctx, append(drivers, updated))
}

func (c *controller) removeFromCache(ctx context.Context, id string) error {
	drivers, err := c.cache.Drivers(ctx)
	if err != nil {
		return fmt.Errorf("read cached drivers: %w", err)
	}
	for i := range drivers {
		if drivers[i].ID == id {
			return c.cache.SaveDrivers(ctx, append(drivers[:i], drivers[i+1:]...))
		}
	}
	return nil
}
