package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// BatchRepository handles batch records on the DB service
type BatchRepository struct {
	client *dbservice.Client
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(client *dbservice.Client) *BatchRepository {
	return &BatchRepository{client: client}
}

// GetBatchByBatchID resolves a human-readable batch id to its record.
func (r *BatchRepository) GetBatchByBatchID(ctx context.Context, batchID string) (*models.Batch, error) {
	var batches []models.Batch
	params := map[string]string{"batch_id": batchID}
	if err := r.client.Get(ctx, "/batch", toValues(params), &batches); err != nil {
		return nil, fmt.Errorf("batch lookup failed: %w", err)
	}
	if len(batches) == 0 {
		return nil, apperrors.ErrBatchNotFound
	}
	return &batches[0], nil
}
