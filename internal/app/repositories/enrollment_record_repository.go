package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// EnrollmentRecordRepository handles enrollment records on the DB service
type EnrollmentRecordRepository struct {
	client *dbservice.Client
}

// NewEnrollmentRecordRepository creates a new EnrollmentRecordRepository
func NewEnrollmentRecordRepository(client *dbservice.Client) *EnrollmentRecordRepository {
	return &EnrollmentRecordRepository{client: client}
}

// FindEnrollmentRecords returns every enrollment matching the given filters.
func (r *EnrollmentRecordRepository) FindEnrollmentRecords(ctx context.Context, params map[string]string) ([]models.EnrollmentRecord, error) {
	var records []models.EnrollmentRecord
	if err := r.client.Get(ctx, "/enrollment-record", toValues(params), &records); err != nil {
		return nil, fmt.Errorf("enrollment record lookup failed: %w", err)
	}
	return records, nil
}

// CreateEnrollmentRecord creates a new enrollment.
func (r *EnrollmentRecordRepository) CreateEnrollmentRecord(ctx context.Context, record models.EnrollmentRecord) (*models.EnrollmentRecord, error) {
	var created models.EnrollmentRecord
	if err := r.client.Post(ctx, "/enrollment-record", record, &created); err != nil {
		return nil, fmt.Errorf("enrollment record create failed: %w", err)
	}
	return &created, nil
}
