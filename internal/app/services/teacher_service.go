package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/mapping"
	"github.com/gurukulhq/portal-backend/internal/pkg/metrics"
	"github.com/gurukulhq/portal-backend/internal/pkg/queue"
)

// TeacherService implements teacher registration and verification.
type TeacherService struct {
	users       UserStore
	teachers    TeacherStore
	subjects    SubjectStore
	identifiers *IdentifierService
	memberships *MembershipService
	events      EventPublisher
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(users UserStore, teachers TeacherStore, subjects SubjectStore, identifiers *IdentifierService, memberships *MembershipService, events EventPublisher) *TeacherService {
	return &TeacherService{
		users:       users,
		teachers:    teachers,
		subjects:    subjects,
		identifiers: identifiers,
		memberships: memberships,
		events:      events,
	}
}

// Register creates a teacher record. Teachers are keyed on their contact
// details: a registration matching an existing teacher's email or phone
// returns that teacher instead of creating a duplicate.
func (s *TeacherService) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.TeacherRegistrationResponse, error) {
	form, err := mapping.ValidateQueryParams(req.FormData,
		mapping.Merge(mapping.UserQueryParams, mapping.TeacherQueryParams))
	if err != nil {
		return nil, err
	}

	if err := mapping.RequireFields(form, "first_name", "phone"); err != nil {
		return nil, err
	}

	if req.IDGeneration {
		existingID, err := s.findExistingTeacher(ctx, form)
		if err != nil {
			return nil, err
		}
		if existingID != "" {
			metrics.DeduplicationHitsTotal.WithLabelValues(string(models.RoleTeacher)).Inc()
			metrics.RegistrationsTotal.WithLabelValues(string(models.RoleTeacher), "existing").Inc()
			s.events.PublishRegistration(ctx, queue.RegistrationEvent{
				Role:          string(models.RoleTeacher),
				DisplayID:     existingID,
				AuthGroup:     req.AuthGroup,
				AlreadyExists: true,
			})
			return &dto.TeacherRegistrationResponse{TeacherID: existingID, AlreadyExists: true}, nil
		}

		teacherID, err := s.identifiers.TeacherID(ctx, s.teachers.TeacherIDExists)
		if err != nil {
			return nil, err
		}
		form["teacher_id"] = teacherID
	} else if err := mapping.RequireFields(form, "teacher_id"); err != nil {
		return nil, err
	}

	payload := normalizeForm(form)
	payload["role"] = string(models.RoleTeacher)

	if form["subject"] != "" {
		subject, err := s.subjects.GetSubjectByName(ctx, form["subject"])
		if err != nil && !errors.Is(err, apperrors.ErrSubjectNotFound) {
			return nil, err
		}
		if subject != nil {
			payload["subject_id"] = strconv.FormatInt(subject.ID, 10)
		}
	}

	created, err := s.teachers.CreateTeacher(ctx, payload)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(string(models.RoleTeacher), "failed").Inc()
		return nil, err
	}

	if created.User != nil {
		if err := s.memberships.EnrollUser(ctx, created.User.ID, req.AuthGroup, form); err != nil {
			metrics.RegistrationsTotal.WithLabelValues(string(models.RoleTeacher), "failed").Inc()
			return nil, err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues(string(models.RoleTeacher), "created").Inc()
	s.events.PublishRegistration(ctx, queue.RegistrationEvent{
		Role:      string(models.RoleTeacher),
		DisplayID: created.TeacherID,
		UserID:    userIDString(created.User),
		AuthGroup: req.AuthGroup,
	})

	return &dto.TeacherRegistrationResponse{TeacherID: created.TeacherID}, nil
}

func (s *TeacherService) findExistingTeacher(ctx context.Context, form map[string]string) (string, error) {
	users, err := s.users.FindUserByEmailOrPhone(ctx, form["email"], form["phone"])
	if err != nil {
		return "", err
	}

	for _, user := range users {
		teachers, err := s.teachers.FindTeachers(ctx, map[string]string{
			"user_id": strconv.FormatInt(user.ID, 10),
		})
		if err != nil {
			return "", err
		}
		if len(teachers) > 0 {
			return teachers[0].TeacherID, nil
		}
	}

	return "", nil
}

// Verify checks whether a teacher matching the query exists.
func (s *TeacherService) Verify(ctx context.Context, params map[string]string) (*dto.VerificationResponse, error) {
	validated, err := mapping.ValidateQueryParams(params,
		mapping.Merge(mapping.UserQueryParams, mapping.TeacherQueryParams))
	if err != nil {
		return nil, err
	}
	if err := mapping.RequireFields(validated, "teacher_id"); err != nil {
		return nil, err
	}

	teachers, err := s.teachers.FindTeachers(ctx, validated)
	if err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return &dto.VerificationResponse{IsValid: false}, nil
	}

	teacher := teachers[0]
	return &dto.VerificationResponse{
		IsValid:       true,
		UserID:        userIDString(teacher.User),
		DisplayID:     teacher.TeacherID,
		DisplayIDType: "teacher_id",
	}, nil
}
