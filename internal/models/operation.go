package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OperationType identifies the kind of deferred mutation an Operation
// carries. The set is closed: the sync engine only knows how to dispatch
// these three kinds.
type OperationType string

const (
	// OperationUpdate is a partial field mutation of an asset record
	OperationUpdate OperationType = "update"
	// OperationPhoto is a binary photo upload for an asset
	OperationPhoto OperationType = "photo"
	// OperationSignature is a base64 signature image upload with signer metadata
	OperationSignature OperationType = "signature"
)

// OperationStatus is the replay state of a queued operation.
type OperationStatus string

const (
	// StatusPending means the operation is waiting for the next sync pass
	StatusPending OperationStatus = "pending"
	// StatusSyncing means a sync pass is currently executing the operation
	StatusSyncing OperationStatus = "syncing"
	// StatusFailed is part of the wire vocabulary but is never persisted:
	// a failed attempt either requeues the operation as pending (with the
	// retry count bumped) or drops it once the retry budget is exhausted
	StatusFailed OperationStatus = "failed"
)

// Operation represents a single deferred mutation awaiting remote
// execution. Operations are created when the user mutates data (possibly
// while offline), persisted in the local queue store, and destroyed either
// on successful remote execution or after exhausting the retry budget.
type Operation struct {
	ID         string          `json:"id"`
	Type       OperationType   `json:"type"`
	SubjectID  int64           `json:"subject_id"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt int64           `json:"enqueued_at"` // epoch millis, FIFO ordering key
	RetryCount int             `json:"retry_count"`
	Status     OperationStatus `json:"status"`
}

// UpdatePayload carries a partial asset record for an update operation.
// Only the fields present in Fields are sent to the server.
type UpdatePayload struct {
	Fields map[string]any `json:"fields"`
}

// PhotoPayload carries binary photo content for a photo operation.
type PhotoPayload struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// SignaturePayload carries a captured signature image plus signer and
// action metadata (e.g. a home-office checkout receipt).
type SignaturePayload struct {
	ImageBase64 string `json:"image_base64"`
	Signer      string `json:"signer"`
	Action      string `json:"action"`
	SignedAt    int64  `json:"signed_at"`
}

// NewOperation constructs a pending operation with a fresh id and the
// current time as its ordering key. The payload must be JSON-serializable.
func NewOperation(opType OperationType, subjectID int64, payload any) (*Operation, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	now := time.Now().UnixMilli()

	return &Operation{
		ID:         NewOperationID(now),
		Type:       opType,
		SubjectID:  subjectID,
		Payload:    data,
		EnqueuedAt: now,
		RetryCount: 0,
		Status:     StatusPending,
	}, nil
}

// NewOperationID builds a time-prefixed id with a random suffix. The time
// prefix keeps ids roughly ordered, the uuid suffix avoids collisions when
// two operations are enqueued within the same millisecond.
func NewOperationID(unixMilli int64) string {
	return fmt.Sprintf("%d-%s", unixMilli, uuid.New().String()[:8])
}

// DecodeUpdatePayload unmarshals the payload of an update operation.
func (o *Operation) DecodeUpdatePayload() (*UpdatePayload, error) {
	if o.Type != OperationUpdate {
		return nil, fmt.Errorf("operation is not an update, got type: %s", o.Type)
	}
	p := &UpdatePayload{}
	if err := json.Unmarshal(o.Payload, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal update payload: %w", err)
	}
	return p, nil
}

// DecodePhotoPayload unmarshals the payload of a photo operation.
func (o *Operation) DecodePhotoPayload() (*PhotoPayload, error) {
	if o.Type != OperationPhoto {
		return nil, fmt.Errorf("operation is not a photo, got type: %s", o.Type)
	}
	p := &PhotoPayload{}
	if err := json.Unmarshal(o.Payload, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photo payload: %w", err)
	}
	return p, nil
}

// DecodeSignaturePayload unmarshals the payload of a signature operation.
func (o *Operation) DecodeSignaturePayload() (*SignaturePayload, error) {
	if o.Type != OperationSignature {
		return nil, fmt.Errorf("operation is not a signature, got type: %s", o.Type)
	}
	p := &SignaturePayload{}
	if err := json.Unmarshal(o.Payload, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signature payload: %w", err)
	}
	return p, nil
}
