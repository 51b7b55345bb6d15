package adapter

import "errors"

// Sentinel errors returned by [DriverClient] implementations. Callers match
// them with [errors.Is]; the concrete error carries additional context from
// the transport or the service response body.
var (
	// ErrUnreachable indicates the service could not be reached or answered
	// with a server-side failure. The operation may succeed when retried
	// later and is safe to queue.
	ErrUnreachable = errors.New("remote service unreachable")
	// ErrNotFound indicates the target driver does not exist on the service.
	ErrNotFound = errors.New("driver not found")
	// ErrInvalid indicates the service rejected the request payload.
	ErrInvalid = errors.New("invalid driver data")
)
