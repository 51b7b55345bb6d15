package service

import "errors"

var (
	// ErrSyncInFlight is returned by Sync when a replay pass is already
	// running. Only one pass may touch the pending log at a time.
	ErrSyncInFlight = errors.New("sync already in progress")

	// ErrLocalOnlyDriver marks replay attempts that target a driver id the
	// remote service has never seen. Such operations cannot be applied until
	// the creating operation succeeds.
	ErrLocalOnlyDriver = errors.New("operation targets a local-only driver")
)
