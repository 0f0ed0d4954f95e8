package sync

import (
	"context"
	"errors"
	"fmt"

	httpClient "github.com/assetops/fieldsync/internal/client/api"
	"github.com/assetops/fieldsync/internal/models"
	"github.com/assetops/fieldsync/pkg/api"
)

//go:generate moq -out executor_mock.go . Executor

// ErrPermanent marks an operation failure that can never succeed on
// retry (unknown operation type, undecodable payload). The engine drops
// such operations immediately instead of consuming the retry budget.
var ErrPermanent = errors.New("permanent operation failure")

// Executor performs the remote call for one queued operation.
type Executor interface {
	// Execute dispatches the operation to the server.
	// Retried calls for the same operation must be safe: the engine may
	// execute an operation again if the success was not observed.
	Execute(ctx context.Context, op *models.Operation) error
}

// APIExecutor dispatches operations to the inventory server over the
// HTTP client, by operation type.
type APIExecutor struct {
	client httpClient.ClientAPI
}

// Compile-time check that APIExecutor implements Executor
var _ Executor = (*APIExecutor)(nil)

// NewAPIExecutor creates an executor backed by the given API client.
func NewAPIExecutor(client httpClient.ClientAPI) *APIExecutor {
	return &APIExecutor{client: client}
}

// Execute performs the network call matching the operation type.
func (e *APIExecutor) Execute(ctx context.Context, op *models.Operation) error {
	switch op.Type {
	case models.OperationUpdate:
		return e.executeUpdate(ctx, op)
	case models.OperationPhoto:
		return e.executePhoto(ctx, op)
	case models.OperationSignature:
		return e.executeSignature(ctx, op)
	default:
		return fmt.Errorf("%w: %s", ErrPermanent, op.Type)
	}
}

func (e *APIExecutor) executeUpdate(ctx context.Context, op *models.Operation) error {
	payload, err := op.DecodeUpdatePayload()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermanent, err)
	}

	_, err = e.client.UpdateAsset(ctx, op.SubjectID, api.AssetUpdateRequest{
		Fields: payload.Fields,
	})
	if err != nil {
		return fmt.Errorf("update failed for asset %d: %w", op.SubjectID, err)
	}
	return nil
}

func (e *APIExecutor) executePhoto(ctx context.Context, op *models.Operation) error {
	payload, err := op.DecodePhotoPayload()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermanent, err)
	}

	_, err = e.client.UploadPhoto(ctx, op.SubjectID, payload.FileName, payload.ContentType, payload.Data)
	if err != nil {
		return fmt.Errorf("photo upload failed for asset %d: %w", op.SubjectID, err)
	}
	return nil
}

func (e *APIExecutor) executeSignature(ctx context.Context, op *models.Operation) error {
	payload, err := op.DecodeSignaturePayload()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermanent, err)
	}

	_, err = e.client.UploadSignature(ctx, op.SubjectID, api.SignatureUploadRequest{
		ImageBase64: payload.ImageBase64,
		Signer:      payload.Signer,
		Action:      payload.Action,
		SignedAt:    payload.SignedAt,
	})
	if err != nil {
		return fmt.Errorf("signature upload failed for asset %d: %w", op.SubjectID, err)
	}
	return nil
}
