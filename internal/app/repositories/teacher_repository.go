package repositories

import (
	"context"
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// TeacherRepository handles teacher records on the DB service
type TeacherRepository struct {
	client *dbservice.Client
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(client *dbservice.Client) *TeacherRepository {
	return &TeacherRepository{client: client}
}

// FindTeachers returns every teacher matching the given filters.
func (r *TeacherRepository) FindTeachers(ctx context.Context, params map[string]string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := r.client.Get(ctx, "/teacher", toValues(params), &teachers); err != nil {
		return nil, fmt.Errorf("teacher lookup failed: %w", err)
	}
	return teachers, nil
}

// TeacherIDExists reports whether a teacher record already carries the id.
func (r *TeacherRepository) TeacherIDExists(ctx context.Context, teacherID string) (bool, error) {
	teachers, err := r.FindTeachers(ctx, map[string]string{"teacher_id": teacherID})
	if err != nil {
		return false, err
	}
	return len(teachers) > 0, nil
}

// CreateTeacher posts the assembled record and returns the created teacher.
func (r *TeacherRepository) CreateTeacher(ctx context.Context, fields map[string]string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.client.Post(ctx, "/teacher", fields, &teacher); err != nil {
		return nil, fmt.Errorf("teacher create failed: %w", err)
	}
	if teacher.ID == 0 && teacher.TeacherID == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMalformedResponse,
			"Teacher API could not fetch the created record")
	}
	return &teacher, nil
}
