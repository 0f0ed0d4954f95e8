package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperation(t *testing.T) {
	before := time.Now().UnixMilli()

	op, err := NewOperation(OperationUpdate, 42, &UpdatePayload{
		Fields: map[string]any{"status": AssetStatusRepair},
	})
	require.NoError(t, err)
	require.NotNil(t, op)

	after := time.Now().UnixMilli()

	assert.NotEmpty(t, op.ID)
	assert.Equal(t, OperationUpdate, op.Type)
	assert.Equal(t, int64(42), op.SubjectID)
	assert.Equal(t, StatusPending, op.Status)
	assert.Equal(t, 0, op.RetryCount)
	assert.GreaterOrEqual(t, op.EnqueuedAt, before)
	assert.LessOrEqual(t, op.EnqueuedAt, after)
}

func TestNewOperation_UnmarshalablePayload(t *testing.T) {
	_, err := NewOperation(OperationUpdate, 1, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal payload")
}

func TestNewOperationID_Unique(t *testing.T) {
	now := time.Now().UnixMilli()

	seen := make(map[string]bool)
	for range 100 {
		id := NewOperationID(now)
		assert.False(t, seen[id], "duplicate id: %s", id)
		seen[id] = true
	}
}

func TestNewOperationID_TimePrefix(t *testing.T) {
	id := NewOperationID(1700000000000)
	assert.True(t, strings.HasPrefix(id, "1700000000000-"))
}

func TestDecodeUpdatePayload(t *testing.T) {
	op, err := NewOperation(OperationUpdate, 7, &UpdatePayload{
		Fields: map[string]any{"location": "HQ-3F", "notes": "screen replaced"},
	})
	require.NoError(t, err)

	p, err := op.DecodeUpdatePayload()
	require.NoError(t, err)
	assert.Equal(t, "HQ-3F", p.Fields["location"])
	assert.Equal(t, "screen replaced", p.Fields["notes"])
}

func TestDecodeUpdatePayload_WrongType(t *testing.T) {
	op, err := NewOperation(OperationPhoto, 7, &PhotoPayload{
		FileName:    "front.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xff, 0xd8},
	})
	require.NoError(t, err)

	_, err = op.DecodeUpdatePayload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an update")
}

func TestDecodePhotoPayload(t *testing.T) {
	op, err := NewOperation(OperationPhoto, 7, &PhotoPayload{
		FileName:    "front.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)

	p, err := op.DecodePhotoPayload()
	require.NoError(t, err)
	assert.Equal(t, "front.jpg", p.FileName)
	assert.Equal(t, "image/jpeg", p.ContentType)
	assert.Equal(t, []byte("jpeg-bytes"), p.Data)
}

func TestDecodeSignaturePayload(t *testing.T) {
	op, err := NewOperation(OperationSignature, 9, &SignaturePayload{
		ImageBase64: "aW1n",
		Signer:      "J. Smith",
		Action:      "checkout",
		SignedAt:    1700000000000,
	})
	require.NoError(t, err)

	p, err := op.DecodeSignaturePayload()
	require.NoError(t, err)
	assert.Equal(t, "J. Smith", p.Signer)
	assert.Equal(t, "checkout", p.Action)
	assert.Equal(t, int64(1700000000000), p.SignedAt)
}

func TestOperation_JSONRoundTrip(t *testing.T) {
	op, err := NewOperation(OperationSignature, 9, &SignaturePayload{
		ImageBase64: "aW1n",
		Signer:      "J. Smith",
		Action:      "return",
	})
	require.NoError(t, err)
	op.RetryCount = 2
	op.Status = StatusFailed

	data, err := json.Marshal(op)
	require.NoError(t, err)

	decoded := &Operation{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, op.ID, decoded.ID)
	assert.Equal(t, op.Type, decoded.Type)
	assert.Equal(t, op.EnqueuedAt, decoded.EnqueuedAt)
	assert.Equal(t, 2, decoded.RetryCount)
	assert.Equal(t, StatusFailed, decoded.Status)
}
