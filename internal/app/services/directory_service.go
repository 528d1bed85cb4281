package services

import (
	"context"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/app/repositories"
	"github.com/gurukulhq/portal-backend/internal/pkg/mapping"
)

// DirectoryService serves the read passthrough endpoints. Each listing
// validates the caller's query parameters against the entity's allow-list
// before forwarding them to the DB service.
type DirectoryService struct {
	repos *repositories.Repositories
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(repos *repositories.Repositories) *DirectoryService {
	return &DirectoryService{repos: repos}
}

// ListUsers returns users matching the query.
func (s *DirectoryService) ListUsers(ctx context.Context, params map[string]string) ([]models.User, error) {
	validated, err := mapping.ValidateQueryParams(params, mapping.UserQueryParams)
	if err != nil {
		return nil, err
	}
	return s.repos.User.FindUsers(ctx, validated)
}

// ListStudents returns students matching the query.
func (s *DirectoryService) ListStudents(ctx context.Context, params map[string]string) ([]models.Student, error) {
	validated, err := mapping.ValidateQueryParams(params,
		mapping.Merge(mapping.UserQueryParams, mapping.StudentQueryParams))
	if err != nil {
		return nil, err
	}
	return s.repos.Student.FindStudents(ctx, validated)
}

// ListTeachers returns teachers matching the query.
func (s *DirectoryService) ListTeachers(ctx context.Context, params map[string]string) ([]models.Teacher, error) {
	validated, err := mapping.ValidateQueryParams(params,
		mapping.Merge(mapping.UserQueryParams, mapping.TeacherQueryParams))
	if err != nil {
		return nil, err
	}
	return s.repos.Teacher.FindTeachers(ctx, validated)
}

// ListSchools returns schools matching the query.
func (s *DirectoryService) ListSchools(ctx context.Context, params map[string]string) ([]models.School, error) {
	validated, err := mapping.ValidateQueryParams(params, mapping.SchoolQueryParams)
	if err != nil {
		return nil, err
	}
	return s.repos.School.FindSchools(ctx, validated)
}

// ListGroups returns groups matching the query.
func (s *DirectoryService) ListGroups(ctx context.Context, params map[string]string) ([]models.Group, error) {
	validated, err := mapping.ValidateQueryParams(params, mapping.GroupQueryParams)
	if err != nil {
		return nil, err
	}
	return s.repos.Group.FindGroups(ctx, validated)
}

// ListGroupUsers returns group memberships matching the query.
func (s *DirectoryService) ListGroupUsers(ctx context.Context, params map[string]string) ([]models.GroupUser, error) {
	validated, err := mapping.ValidateQueryParams(params, mapping.GroupUserQueryParams)
	if err != nil {
		return nil, err
	}
	return s.repos.GroupUser.FindGroupUsers(ctx, validated)
}

// ListEnrollmentRecords returns enrollment records matching the query.
func (s *DirectoryService) ListEnrollmentRecords(ctx context.Context, params map[string]string) ([]models.EnrollmentRecord, error) {
	validated, err := mapping.ValidateQueryParams(params, mapping.EnrollmentRecordParams)
	if err != nil {
		return nil, err
	}
	return s.repos.EnrollmentRecord.FindEnrollmentRecords(ctx, validated)
}
