package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
	"github.com/gurukulhq/portal-backend/internal/pkg/mapping"
	"github.com/gurukulhq/portal-backend/internal/pkg/metrics"
	"github.com/gurukulhq/portal-backend/internal/pkg/queue"
)

// StudentStores bundles the stores the student workflow touches.
type StudentStores struct {
	Users       UserStore
	Students    StudentStore
	Schools     SchoolStore
	Grades      GradeStore
	Groups      GroupStore
	Enrollments EnrollmentStore
}

// StudentService implements student registration and verification.
type StudentService struct {
	stores      StudentStores
	identifiers *IdentifierService
	memberships *MembershipService
	events      EventPublisher
}

// NewStudentService creates a new StudentService
func NewStudentService(stores StudentStores, identifiers *IdentifierService, memberships *MembershipService, events EventPublisher) *StudentService {
	return &StudentService{
		stores:      stores,
		identifiers: identifiers,
		memberships: memberships,
		events:      events,
	}
}

// Register runs the student onboarding workflow: validate the form, look for
// an already enrolled student, synthesize a student_id when generation is
// requested, create the record and fan out the group memberships.
func (s *StudentService) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.StudentRegistrationResponse, error) {
	form, err := mapping.ValidateQueryParams(req.FormData,
		mapping.Merge(mapping.UserQueryParams, mapping.StudentQueryParams))
	if err != nil {
		return nil, err
	}

	if err := mapping.RequireFields(form, "first_name", "date_of_birth", "gender", "grade"); err != nil {
		return nil, err
	}

	if req.IDGeneration {
		existingID, err := s.findExistingStudent(ctx, form)
		if err != nil {
			return nil, err
		}
		if existingID != "" {
			metrics.DeduplicationHitsTotal.WithLabelValues(string(models.RoleStudent)).Inc()
			metrics.RegistrationsTotal.WithLabelValues(string(models.RoleStudent), "existing").Inc()
			logger.Info().
				Str("student_id", existingID).
				Msg("registration matched an enrolled student")
			s.events.PublishRegistration(ctx, queue.RegistrationEvent{
				Role:          string(models.RoleStudent),
				DisplayID:     existingID,
				AuthGroup:     req.AuthGroup,
				AlreadyExists: true,
			})
			return &dto.StudentRegistrationResponse{StudentID: existingID, AlreadyExists: true}, nil
		}

		if err := mapping.RequireFields(form, "school_name", "region"); err != nil {
			return nil, err
		}
		grade, err := strconv.Atoi(form["grade"])
		if err != nil {
			return nil, apperrors.NewBadRequestError("grade must be a number")
		}
		studentID, err := s.identifiers.StudentID(ctx, grade, form["school_name"], form["region"], s.stores.Students.StudentIDExists)
		if err != nil {
			return nil, err
		}
		form["student_id"] = studentID
	} else if err := mapping.RequireFields(form, "student_id"); err != nil {
		return nil, err
	}

	payload := normalizeForm(form)
	payload["role"] = string(models.RoleStudent)

	created, err := s.stores.Students.CreateStudent(ctx, payload)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(string(models.RoleStudent), "failed").Inc()
		return nil, err
	}

	if created.User != nil {
		if err := s.memberships.EnrollUser(ctx, created.User.ID, req.AuthGroup, form); err != nil {
			// No rollback of the record or any membership already created.
			metrics.RegistrationsTotal.WithLabelValues(string(models.RoleStudent), "failed").Inc()
			return nil, err
		}
	} else {
		logger.Warn().
			Str("student_id", created.StudentID).
			Msg("created student carried no user, skipping group fan-out")
	}

	metrics.RegistrationsTotal.WithLabelValues(string(models.RoleStudent), "created").Inc()
	s.events.PublishRegistration(ctx, queue.RegistrationEvent{
		Role:      string(models.RoleStudent),
		DisplayID: created.StudentID,
		UserID:    userIDString(created.User),
		AuthGroup: req.AuthGroup,
	})

	return &dto.StudentRegistrationResponse{StudentID: created.StudentID}, nil
}

// findExistingStudent runs the deduplication chain: match the user identity,
// narrow to students in the same grade and category, then require an
// enrollment at the claimed school. The first student passing the whole
// chain wins; an empty result means no chain link matched.
func (s *StudentService) findExistingStudent(ctx context.Context, form map[string]string) (string, error) {
	users, err := s.stores.Users.FindUsers(ctx, map[string]string{
		"first_name":    form["first_name"],
		"date_of_birth": form["date_of_birth"],
		"gender":        form["gender"],
	})
	if err != nil {
		return "", err
	}
	if len(users) == 0 {
		return "", nil
	}

	matched := make(map[int64]bool, len(users))
	for _, user := range users {
		matched[user.ID] = true
	}

	studentParams := map[string]string{"grade": form["grade"]}
	if form["category"] != "" {
		studentParams["category"] = form["category"]
	}
	students, err := s.stores.Students.FindStudents(ctx, studentParams)
	if err != nil {
		return "", err
	}

	var candidates []models.Student
	for _, student := range students {
		if student.User != nil && matched[student.User.ID] {
			candidates = append(candidates, student)
		}
	}
	if len(candidates) == 0 {
		return "", nil
	}

	// Without a school claim the identity plus profile match is the whole
	// chain.
	if form["school_name"] == "" {
		return candidates[0].StudentID, nil
	}

	school, err := s.stores.Schools.GetSchool(ctx, map[string]string{"name": form["school_name"]})
	if errors.Is(err, apperrors.ErrSchoolNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	group, err := s.stores.Groups.GetGroupByKindAndChild(ctx, models.GroupKindSchool, school.ID)
	if errors.Is(err, apperrors.ErrGroupNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		records, err := s.stores.Enrollments.FindEnrollmentRecords(ctx, map[string]string{
			"group_id": strconv.FormatInt(group.ID, 10),
			"user_id":  strconv.FormatInt(candidate.User.ID, 10),
		})
		if err != nil {
			return "", err
		}
		if len(records) > 0 {
			return candidate.StudentID, nil
		}
	}

	return "", nil
}

// Verify checks whether a student matching the query exists and returns the
// structured verification result.
func (s *StudentService) Verify(ctx context.Context, params map[string]string) (*dto.VerificationResponse, error) {
	validated, err := mapping.ValidateQueryParams(params,
		mapping.Merge(mapping.UserQueryParams, mapping.StudentQueryParams))
	if err != nil {
		return nil, err
	}
	if err := mapping.RequireFields(validated, "student_id"); err != nil {
		return nil, err
	}

	students, err := s.stores.Students.FindStudents(ctx, validated)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return &dto.VerificationResponse{IsValid: false}, nil
	}

	student := students[0]
	return &dto.VerificationResponse{
		IsValid:       true,
		UserID:        userIDString(student.User),
		DisplayID:     student.StudentID,
		DisplayIDType: "student_id",
	}, nil
}

func userIDString(user *models.User) string {
	if user == nil {
		return ""
	}
	return strconv.FormatInt(user.ID, 10)
}
