package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OperationType discriminates the pending-operation variants.
type OperationType string

const (
	// OperationAdd queues a driver created while offline.
	OperationAdd OperationType = "ADD"
	// OperationUpdate queues a partial update made while offline.
	OperationUpdate OperationType = "UPDATE"
	// OperationDelete queues a deletion made while offline.
	OperationDelete OperationType = "DELETE"
)

// PendingOperation is a queued, not-yet-confirmed mutation awaiting replay
// against the remote service. Exactly one payload variant is populated,
// according to Type: Payload for ADD, DriverID+Patch for UPDATE, DriverID for
// DELETE. Operations are immutable once created; they are removed from the
// log individually after a confirmed replay.
//
// Construct values through NewAddOperation, NewUpdateOperation and
// NewDeleteOperation so the variant shape always holds.
type PendingOperation struct {
	ID string `json:"id"`
	// Type selects the variant.
	Type OperationType `json:"type"`
	// CreatedAt is a unix-nanosecond timestamp used only for replay ordering.
	CreatedAt int64 `json:"timestamp"`
	// DriverID is the target of UPDATE and DELETE operations. It may be a
	// synthesized local id, in which case the operation is not replayable
	// until the matching ADD has been confirmed.
	DriverID string `json:"driverId,omitempty"`
	// Payload is set for ADD operations.
	Payload *DriverPayload `json:"data,omitempty"`
	// Patch is set for UPDATE operations.
	Patch *DriverPatch `json:"patch,omitempty"`
}

// NewAddOperation queues the creation of a driver.
func NewAddOperation(payload DriverPayload) PendingOperation {
	op := newOperation(OperationAdd)
	op.Payload = &payload
	return op
}

// NewUpdateOperation queues a partial update of the driver with the given id.
func NewUpdateOperation(driverID string, patch DriverPatch) PendingOperation {
	op := newOperation(OperationUpdate)
	op.DriverID = driverID
	op.Patch = &patch
	return op
}

// NewDeleteOperation queues the deletion of the driver with the given id.
func NewDeleteOperation(driverID string) PendingOperation {
	op := newOperation(OperationDelete)
	op.DriverID = driverID
	return op
}

func newOperation(t OperationType) PendingOperation {
	return PendingOperation{
		ID:        uuid.NewString(),
		Type:      t,
		CreatedAt: time.Now().UnixNano(),
	}
}

// Validate checks that the variant shape matches the discriminant. Useful for
// values decoded from the durable store rather than built by a constructor.
func (op PendingOperation) Validate() error {
	if op.ID == "" {
		return errors.New("pending operation has no id")
	}
	switch op.Type {
	case OperationAdd:
		if op.Payload == nil {
			return fmt.Errorf("add operation %s has no payload", op.ID)
		}
	case OperationUpdate:
		if op.DriverID == "" {
			return fmt.Errorf("update operation %s has no target id", op.ID)
		}
		if op.Patch == nil {
			return fmt.Errorf("update operation %s has no patch", op.ID)
		}
	case OperationDelete:
		if op.DriverID == "" {
			return fmt.Errorf("delete operation %s has no target id", op.ID)
		}
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}
	return nil
}
