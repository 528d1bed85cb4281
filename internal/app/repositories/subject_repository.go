package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// SubjectRepository handles subject records on the DB service
type SubjectRepository struct {
	client *dbservice.Client
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(client *dbservice.Client) *SubjectRepository {
	return &SubjectRepository{client: client}
}

// GetSubjectByName resolves a subject name to its record.
func (r *SubjectRepository) GetSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	var subjects []models.Subject
	params := map[string]string{"name": name}
	if err := r.client.Get(ctx, "/subject", toValues(params), &subjects); err != nil {
		return nil, fmt.Errorf("subject lookup failed: %w", err)
	}
	if len(subjects) == 0 {
		return nil, apperrors.ErrSubjectNotFound
	}
	return &subjects[0], nil
}
