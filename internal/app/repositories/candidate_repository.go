package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// CandidateRepository handles candidate records on the DB service
type CandidateRepository struct {
	client *dbservice.Client
}

// NewCandidateRepository creates a new CandidateRepository
func NewCandidateRepository(client *dbservice.Client) *CandidateRepository {
	return &CandidateRepository{client: client}
}

// FindCandidates returns every candidate matching the given filters.
func (r *CandidateRepository) FindCandidates(ctx context.Context, params map[string]string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.client.Get(ctx, "/candidate", toValues(params), &candidates); err != nil {
		return nil, fmt.Errorf("candidate lookup failed: %w", err)
	}
	return candidates, nil
}

// CandidateIDExists reports whether a candidate record already carries the id.
func (r *CandidateRepository) CandidateIDExists(ctx context.Context, candidateID string) (bool, error) {
	candidates, err := r.FindCandidates(ctx, map[string]string{"candidate_id": candidateID})
	if err != nil {
		return false, err
	}
	return len(candidates) > 0, nil
}

// CreateCandidate posts the assembled record and returns the created candidate.
func (r *CandidateRepository) CreateCandidate(ctx context.Context, fields map[string]string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.client.Post(ctx, "/candidate", fields, &candidate); err != nil {
		return nil, fmt.Errorf("candidate create failed: %w", err)
	}
	if candidate.ID == 0 && candidate.CandidateID == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMalformedResponse,
			"Candidate API could not fetch the created record")
	}
	return &candidate, nil
}
