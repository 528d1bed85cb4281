package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// StudentRepository handles student records on the DB service
type StudentRepository struct {
	client *dbservice.Client
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(client *dbservice.Client) *StudentRepository {
	return &StudentRepository{client: client}
}

// FindStudents returns every student matching the given filters.
func (r *StudentRepository) FindStudents(ctx context.Context, params map[string]string) ([]models.Student, error) {
	var students []models.Student
	if err := r.client.Get(ctx, "/student", toValues(params), &students); err != nil {
		return nil, fmt.Errorf("student lookup failed: %w", err)
	}
	return students, nil
}

// StudentIDExists reports whether a student record already carries the id.
func (r *StudentRepository) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	students, err := r.FindStudents(ctx, map[string]string{"student_id": studentID})
	if err != nil {
		return false, err
	}
	return len(students) > 0, nil
}

// CreateStudent posts the assembled record. The DB service creates the user
// and the student profile together and returns the created student.
func (r *StudentRepository) CreateStudent(ctx context.Context, fields map[string]string) (*models.Student, error) {
	var student models.Student
	if err := r.client.Post(ctx, "/student", fields, &student); err != nil {
		return nil, fmt.Errorf("student create failed: %w", err)
	}
	if student.ID == 0 && student.StudentID == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMalformedResponse,
			"Student API could not fetch the created record")
	}
	return &student, nil
}

// UpdateStudent patches an existing student record.
func (r *StudentRepository) UpdateStudent(ctx context.Context, fields map[string]string) (*models.Student, error) {
	var student models.Student
	if err := r.client.Patch(ctx, "/student", fields, &student); err != nil {
		return nil, fmt.Errorf("student update failed: %w", err)
	}
	return &student, nil
}
