package models

// SyncResult reports the outcome of one replay pass over the pending
// operation log. Failed operations stay queued for a later pass; Success is
// true only when every queued operation was confirmed by the remote service.
type SyncResult struct {
	Success bool   `json:"success"`
	Synced  int    `json:"synced"`
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}
