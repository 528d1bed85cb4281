package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// SchoolRepository handles school records on the DB service
type SchoolRepository struct {
	client *dbservice.Client
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(client *dbservice.Client) *SchoolRepository {
	return &SchoolRepository{client: client}
}

// FindSchools returns every school matching the given filters.
func (r *SchoolRepository) FindSchools(ctx context.Context, params map[string]string) ([]models.School, error) {
	var schools []models.School
	if err := r.client.Get(ctx, "/school", toValues(params), &schools); err != nil {
		return nil, fmt.Errorf("school lookup failed: %w", err)
	}
	return schools, nil
}

// GetSchool returns the first school matching the filters, or
// ErrSchoolNotFound when none match.
func (r *SchoolRepository) GetSchool(ctx context.Context, params map[string]string) (*models.School, error) {
	schools, err := r.FindSchools(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(schools) == 0 {
		return nil, apperrors.ErrSchoolNotFound
	}
	return &schools[0], nil
}

// GetSchoolByNameAndRegion returns the school for the (region, name) pair
// used by identifier synthesis.
func (r *SchoolRepository) GetSchoolByNameAndRegion(ctx context.Context, name, region string) (*models.School, error) {
	return r.GetSchool(ctx, map[string]string{"name": name, "region": region})
}

// GetSchoolByNameAndDistrict returns the school for the (name, district) pair.
func (r *SchoolRepository) GetSchoolByNameAndDistrict(ctx context.Context, name, district string) (*models.School, error) {
	return r.GetSchool(ctx, map[string]string{"name": name, "district": district})
}
