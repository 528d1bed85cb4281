// Package repositories provides per-entity access to the records owned by
// the DB microservice. Every repository shares one dbservice.Client; none
// of them hold local state.
package repositories

import (
	"net/url"

	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
)

// Repositories holds all entity repositories
type Repositories struct {
	User             *UserRepository
	Student          *StudentRepository
	Teacher          *TeacherRepository
	Candidate        *CandidateRepository
	School           *SchoolRepository
	Grade            *GradeRepository
	Subject          *SubjectRepository
	Exam             *ExamRepository
	Group            *GroupRepository
	GroupUser        *GroupUserRepository
	EnrollmentRecord *EnrollmentRecordRepository
	Batch            *BatchRepository
	AuthGroup        *AuthGroupRepository
}

// NewRepositories creates all repositories over one shared client
func NewRepositories(client *dbservice.Client) *Repositories {
	return &Repositories{
		User:             NewUserRepository(client),
		Student:          NewStudentRepository(client),
		Teacher:          NewTeacherRepository(client),
		Candidate:        NewCandidateRepository(client),
		School:           NewSchoolRepository(client),
		Grade:            NewGradeRepository(client),
		Subject:          NewSubjectRepository(client),
		Exam:             NewExamRepository(client),
		Group:            NewGroupRepository(client),
		GroupUser:        NewGroupUserRepository(client),
		EnrollmentRecord: NewEnrollmentRecordRepository(client),
		Batch:            NewBatchRepository(client),
		AuthGroup:        NewAuthGroupRepository(client),
	}
}

// toValues converts a flat string map into url.Values
func toValues(params map[string]string) url.Values {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values
}
