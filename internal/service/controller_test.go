package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akhmetovr/go-grid-keeper/internal/adapter"
	"github.com/akhmetovr/go-grid-keeper/internal/logger"
	"github.com/akhmetovr/go-grid-keeper/internal/mock"
	"github.com/akhmetovr/go-grid-keeper/models"
)

// stubNet is a fixed connectivity answer for controller tests.
type stubNet struct{ online bool }

func (s stubNet) Online() bool { return s.online }

func newControllerMocks(ctrl *gomock.Controller, online bool) (
	Controller,
	*mock.MockCacheRepository,
	*mock.MockPendingLog,
	*mock.MockDriverClient,
	*mock.MockReconciler,
) {
	cache := mock.NewMockCacheRepository(ctrl)
	pending := mock.NewMockPendingLog(ctrl)
	remote := mock.NewMockDriverClient(ctrl)
	rec := mock.NewMockReconciler(ctrl)
	c := NewController(cache, pending, remote, rec, stubNet{online: online}, logger.Nop())
	return c, cache, pending, remote, rec
}

// ── Fetch ──

func TestControllerFetch_OfflineServesCacheWithLocalFilterSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, _, _, _ := newControllerMocks(ctrl, false)
	ctx := context.Background()

	cache.EXPECT().Drivers(ctx).Return(serverListing(), nil)

	got, err := c.Fetch(ctx, models.ListFilter{Team: "mercedes"}, models.ListSort{By: "wins", Order: models.SortDesc})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestControllerFetch_OnlineReturnsMergedView(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, remote, rec := newControllerMocks(ctrl, true)
	ctx := context.Background()

	listing := serverListing()
	merged := append(serverListing(), models.Driver{ID: "local-abc", Name: "X", Team: "Y", FirstSeason: 2020})

	filter := models.ListFilter{Team: "red"}
	sort := models.ListSort{By: "name"}
	remote.EXPECT().List(ctx, filter, sort).Return(listing, nil)
	rec.EXPECT().MergeWithLocal(ctx, listing).Return(merged, nil)

	got, err := c.Fetch(ctx, filter, sort)
	require.NoError(t, err)
	assert.Equal(t, merged, got)
}

func TestControllerFetch_RemoteFailureFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, _, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	remote.EXPECT().List(ctx, models.ListFilter{}, models.ListSort{}).Return(nil, adapter.ErrUnreachable)
	cache.EXPECT().Drivers(ctx).Return(serverListing(), nil)

	got, err := c.Fetch(ctx, models.ListFilter{}, models.ListSort{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

// ── Get ──

func TestControllerGet_OnlineNotFoundSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	remote.EXPECT().Get(ctx, "99").Return(models.Driver{}, adapter.ErrNotFound)

	_, err := c.Get(ctx, "99")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestControllerGet_UnreachableFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, _, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	remote.EXPECT().Get(ctx, "2").Return(models.Driver{}, adapter.ErrUnreachable)
	cache.EXPECT().Drivers(ctx).Return(serverListing(), nil)

	got, err := c.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Max Verstappen", got.Name)
}

func TestControllerGet_LocalIDNeverHitsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, _, _, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	local := models.Driver{ID: "local-abc", Name: "X", Team: "Y", FirstSeason: 2020}
	cache.EXPECT().Drivers(ctx).Return([]models.Driver{local}, nil)

	got, err := c.Get(ctx, "local-abc")
	require.NoError(t, err)
	assert.Equal(t, local, got)
}

// ── Add ──

func TestControllerAdd_OnlineCreatesRemotelyAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, _, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	payload := models.DriverPayload{Name: "X", Team: "Y", FirstSeason: 2020, Races: 5, Wins: 1}
	created := payload.WithID("7")

	remote.EXPECT().Create(ctx, payload).Return(created, nil)
	cache.EXPECT().Drivers(ctx).Return([]models.Driver{}, nil)
	cache.EXPECT().SaveDrivers(ctx, []models.Driver{created}).Return(nil)

	got, err := c.Add(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestControllerAdd_OfflineSynthesizesLocalIDAndQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, pending, _, _ := newControllerMocks(ctrl, false)
	ctx := context.Background()

	payload := models.DriverPayload{Name: "X", Team: "Y", FirstSeason: 2020, Races: 5, Wins: 1}

	var cached []models.Driver
	cache.EXPECT().Drivers(ctx).Return([]models.Driver{}, nil)
	cache.EXPECT().SaveDrivers(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, drivers []models.Driver) error {
			cached = drivers
			return nil
		})
	pending.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, op models.PendingOperation) error {
			assert.Equal(t, models.OperationAdd, op.Type)
			assert.Equal(t, payload, *op.Payload)
			return nil
		})

	got, err := c.Add(ctx, payload)
	require.NoError(t, err)
	assert.True(t, models.IsLocalID(got.ID))
	assert.Equal(t, payload.Name, got.Name)

	require.Len(t, cached, 1)
	assert.Equal(t, got, cached[0])
}

func TestControllerAdd_UnreachableFallsBackToQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, pending, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	payload := models.DriverPayload{Name: "X", Team: "Y", FirstSeason: 2020, Races: 5, Wins: 1}

	remote.EXPECT().Create(ctx, payload).Return(models.Driver{}, adapter.ErrUnreachable)
	cache.EXPECT().Drivers(ctx).Return([]models.Driver{}, nil)
	cache.EXPECT().SaveDrivers(ctx, gomock.Any()).Return(nil)
	pending.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	got, err := c.Add(ctx, payload)
	require.NoError(t, err)
	assert.True(t, models.IsLocalID(got.ID))
}

func TestControllerAdd_InvalidSurfacesWithoutQueuing(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	payload := models.DriverPayload{Name: "X", Team: "Y", FirstSeason: 2020, Races: 5, Wins: 9}
	remote.EXPECT().Create(ctx, payload).Return(models.Driver{}, adapter.ErrInvalid)

	_, err := c.Add(ctx, payload)
	assert.ErrorIs(t, err, adapter.ErrInvalid)
}

// ── Update ──

func TestControllerUpdate_OnlineInvalidLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	wins := 11
	patch := models.DriverPatch{Wins: &wins}
	remote.EXPECT().Update(ctx, "3", patch).Return(models.Driver{}, adapter.ErrInvalid)
	// no cache write, no queued operation

	_, err := c.Update(ctx, "3", patch)
	assert.ErrorIs(t, err, adapter.ErrInvalid)
}

func TestControllerUpdate_OfflinePatchesCacheAndQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, pending, _, _ := newControllerMocks(ctrl, false)
	ctx := context.Background()

	wins := 60
	patch := models.DriverPatch{Wins: &wins}

	cache.EXPECT().Drivers(ctx).Return(serverListing(), nil)
	cache.EXPECT().SaveDrivers(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, drivers []models.Driver) error {
			require.Len(t, drivers, 3)
			assert.Equal(t, 60, drivers[1].Wins)
			return nil
		})
	pending.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, op models.PendingOperation) error {
			assert.Equal(t, models.OperationUpdate, op.Type)
			assert.Equal(t, "2", op.DriverID)
			return nil
		})

	got, err := c.Update(ctx, "2", patch)
	require.NoError(t, err)
	assert.Equal(t, 60, got.Wins)
	assert.Equal(t, "Max Verstappen", got.Name)
}

func TestControllerUpdate_OfflineUncachedIDStillQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, pending, _, _ := newControllerMocks(ctrl, false)
	ctx := context.Background()

	wins := 1
	// target not in the cache: no cache write, but the operation is still
	// accepted optimistically and queued
	cache.EXPECT().Drivers(ctx).Return(serverListing(), nil)
	pending.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, op models.PendingOperation) error {
			assert.Equal(t, models.OperationUpdate, op.Type)
			assert.Equal(t, "99", op.DriverID)
			return nil
		})

	got, err := c.Update(ctx, "99", models.DriverPatch{Wins: &wins})
	require.NoError(t, err)
	assert.Equal(t, "99", got.ID)
	assert.Equal(t, 1, got.Wins)
}

// ── Delete ──

func TestControllerDelete_OnlineRemovesRemotelyAndFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, _, remote, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	remote.EXPECT().Delete(ctx, "3").Return(models.Driver{ID: "3", Name: "Charles Leclerc"}, nil)
	cache.EXPECT().Drivers(ctx).Return(serverListing(), nil)
	cache.EXPECT().SaveDrivers(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, drivers []models.Driver) error {
			assert.Len(t, drivers, 2)
			return nil
		})

	got, err := c.Delete(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "3", got.ID)
}

func TestControllerDelete_OfflineRemovesFromCacheAndQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cache, pending, _, _ := newControllerMocks(ctrl, false)
	ctx := context.Background()

	cache.EXPECT().Drivers(ctx).Return(serverListing(), nil)
	cache.EXPECT().SaveDrivers(ctx, gomock.Any()).Return(nil)
	pending.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, op models.PendingOperation) error {
			assert.Equal(t, models.OperationDelete, op.Type)
			assert.Equal(t, "3", op.DriverID)
			return nil
		})

	got, err := c.Delete(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "3", got.ID)
}

// ── Sync ──

func TestControllerSync_SecondConcurrentCallRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, _, rec := newControllerMocks(ctrl, true)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	rec.EXPECT().SyncWithServer(ctx).DoAndReturn(
		func(context.Context) (models.SyncResult, error) {
			close(started)
			<-release
			return models.SyncResult{Success: true}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Sync(ctx)
		assert.NoError(t, err)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first sync never started")
	}

	_, err := c.Sync(ctx)
	assert.ErrorIs(t, err, ErrSyncInFlight)

	close(release)
	wg.Wait()

	// the gate reopens once the first pass finishes
	rec.EXPECT().SyncWithServer(ctx).Return(models.SyncResult{Success: true}, nil)
	_, err = c.Sync(ctx)
	assert.NoError(t, err)
}

// ── OnConnectivityChange ──

func TestControllerOnConnectivityChange_ReconnectWithPendingSyncsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, pending, _, rec := newControllerMocks(ctrl, true)
	ctx := context.Background()

	pending.EXPECT().Count(ctx).Return(2, nil)
	rec.EXPECT().SyncWithServer(ctx).Return(models.SyncResult{Success: true, Synced: 2}, nil).Times(1)

	c.OnConnectivityChange(ctx, true)
}

func TestControllerOnConnectivityChange_ReconnectWithoutPendingDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, pending, _, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	pending.EXPECT().Count(ctx).Return(0, nil)

	c.OnConnectivityChange(ctx, true)
}

func TestControllerOnConnectivityChange_GoingOfflineDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, _, _, _ := newControllerMocks(ctrl, true)

	c.OnConnectivityChange(context.Background(), false)
}

func TestControllerPendingCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _, pending, _, _ := newControllerMocks(ctrl, true)
	ctx := context.Background()

	pending.EXPECT().Count(ctx).Return(4, nil)

	count, err := c.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	pending.EXPECT().Count(ctx).Return(0, errors.New("boom"))
	_, err = c.PendingCount(ctx)
	assert.Error(t, err)
}
