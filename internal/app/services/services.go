// Package services implements the portal's business logic: token issuance,
// deduplication, identifier synthesis and registration fan-out. Services talk
// to the DB microservice through the store interfaces below so tests can
// substitute in-memory stubs.
package services

import (
	"context"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/app/repositories"
	"github.com/gurukulhq/portal-backend/internal/config"
	"github.com/gurukulhq/portal-backend/internal/pkg/auth"
	"github.com/gurukulhq/portal-backend/internal/pkg/queue"
)

// UserStore reads user identity records.
type UserStore interface {
	FindUsers(ctx context.Context, params map[string]string) ([]models.User, error)
	FindUserByEmailOrPhone(ctx context.Context, email, phone string) ([]models.User, error)
}

// StudentStore reads and writes student profiles.
type StudentStore interface {
	FindStudents(ctx context.Context, params map[string]string) ([]models.Student, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
	CreateStudent(ctx context.Context, fields map[string]string) (*models.Student, error)
}

// TeacherStore reads and writes teacher profiles.
type TeacherStore interface {
	FindTeachers(ctx context.Context, params map[string]string) ([]models.Teacher, error)
	TeacherIDExists(ctx context.Context, teacherID string) (bool, error)
	CreateTeacher(ctx context.Context, fields map[string]string) (*models.Teacher, error)
}

// CandidateStore reads and writes candidate profiles.
type CandidateStore interface {
	FindCandidates(ctx context.Context, params map[string]string) ([]models.Candidate, error)
	CandidateIDExists(ctx context.Context, candidateID string) (bool, error)
	CreateCandidate(ctx context.Context, fields map[string]string) (*models.Candidate, error)
}

// SchoolStore reads school records.
type SchoolStore interface {
	FindSchools(ctx context.Context, params map[string]string) ([]models.School, error)
	GetSchool(ctx context.Context, params map[string]string) (*models.School, error)
	GetSchoolByNameAndRegion(ctx context.Context, name, region string) (*models.School, error)
	GetSchoolByNameAndDistrict(ctx context.Context, name, district string) (*models.School, error)
}

// GradeStore resolves grade numbers.
type GradeStore interface {
	GetGradeByNumber(ctx context.Context, number int) (*models.Grade, error)
}

// SubjectStore resolves subject names.
type SubjectStore interface {
	GetSubjectByName(ctx context.Context, name string) (*models.Subject, error)
}

// ExamStore resolves exam names.
type ExamStore interface {
	GetExamByName(ctx context.Context, name string) (*models.Exam, error)
}

// GroupStore resolves polymorphic groups.
type GroupStore interface {
	FindGroups(ctx context.Context, params map[string]string) ([]models.Group, error)
	GetGroupByKindAndChild(ctx context.Context, kind models.GroupKind, childID int64) (*models.Group, error)
}

// GroupUserStore reads and writes group memberships.
type GroupUserStore interface {
	FindGroupUsers(ctx context.Context, params map[string]string) ([]models.GroupUser, error)
	CreateGroupUser(ctx context.Context, membership models.GroupUser) (*models.GroupUser, error)
}

// EnrollmentStore reads and writes enrollment records.
type EnrollmentStore interface {
	FindEnrollmentRecords(ctx context.Context, params map[string]string) ([]models.EnrollmentRecord, error)
	CreateEnrollmentRecord(ctx context.Context, record models.EnrollmentRecord) (*models.EnrollmentRecord, error)
}

// BatchStore resolves batch ids.
type BatchStore interface {
	GetBatchByBatchID(ctx context.Context, batchID string) (*models.Batch, error)
}

// AuthGroupStore resolves auth group names.
type AuthGroupStore interface {
	GetAuthGroupByName(ctx context.Context, name string) (*models.AuthGroup, error)
}

// EventPublisher sends registration events downstream.
type EventPublisher interface {
	PublishRegistration(ctx context.Context, event queue.RegistrationEvent)
}

// Services holds every service instance
type Services struct {
	Auth       *AuthService
	Student    *StudentService
	Teacher    *TeacherService
	Candidate  *CandidateService
	Directory  *DirectoryService
	Identifier *IdentifierService
	Membership *MembershipService
}

// NewServices wires the services over the repository layer.
func NewServices(
	repos *repositories.Repositories,
	cfg *config.Config,
	jwtService *auth.JWTService,
	publisher *queue.Publisher,
) *Services {
	identifier := NewIdentifierService(repos.School, cfg.Registration.IDRetryBudget)
	membership := NewMembershipService(MembershipStores{
		Groups:      repos.Group,
		GroupUsers:  repos.GroupUser,
		Enrollments: repos.EnrollmentRecord,
		Grades:      repos.Grade,
		Schools:     repos.School,
		Batches:     repos.Batch,
		AuthGroups:  repos.AuthGroup,
	}, cfg.Registration.BatchRules, cfg.Registration.DefaultAcademicYear)

	return &Services{
		Auth: NewAuthService(jwtService),
		Student: NewStudentService(StudentStores{
			Users:       repos.User,
			Students:    repos.Student,
			Schools:     repos.School,
			Grades:      repos.Grade,
			Groups:      repos.Group,
			Enrollments: repos.EnrollmentRecord,
		}, identifier, membership, publisher),
		Teacher:    NewTeacherService(repos.User, repos.Teacher, repos.Subject, identifier, membership, publisher),
		Candidate:  NewCandidateService(repos.User, repos.Candidate, repos.Subject, repos.Exam, identifier, membership, publisher),
		Directory:  NewDirectoryService(repos),
		Identifier: identifier,
		Membership: membership,
	}
}
