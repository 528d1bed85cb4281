package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// ExamRepository handles exam records on the DB service
type ExamRepository struct {
	client *dbservice.Client
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(client *dbservice.Client) *ExamRepository {
	return &ExamRepository{client: client}
}

// GetExamByName resolves an exam name to its record.
func (r *ExamRepository) GetExamByName(ctx context.Context, name string) (*models.Exam, error) {
	var exams []models.Exam
	params := map[string]string{"name": name}
	if err := r.client.Get(ctx, "/exam", toValues(params), &exams); err != nil {
		return nil, fmt.Errorf("exam lookup failed: %w", err)
	}
	if len(exams) == 0 {
		return nil, apperrors.ErrExamNotFound
	}
	return &exams[0], nil
}
