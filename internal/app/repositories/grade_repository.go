package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// GradeRepository handles grade records on the DB service
type GradeRepository struct {
	client *dbservice.Client
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(client *dbservice.Client) *GradeRepository {
	return &GradeRepository{client: client}
}

// GetGradeByNumber resolves a grade number to its record.
func (r *GradeRepository) GetGradeByNumber(ctx context.Context, number int) (*models.Grade, error) {
	var grades []models.Grade
	params := map[string]string{"number": strconv.Itoa(number)}
	if err := r.client.Get(ctx, "/grade", toValues(params), &grades); err != nil {
		return nil, fmt.Errorf("grade lookup failed: %w", err)
	}
	if len(grades) == 0 {
		return nil, apperrors.ErrGradeNotFound
	}
	return &grades[0], nil
}
