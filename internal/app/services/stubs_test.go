package services

import (
	"context"
	"strconv"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/queue"
)

// fakeDB is an in-memory stand-in for the DB service. It implements every
// store interface the services consume.
type fakeDB struct {
	users       []models.User
	students    []models.Student
	teachers    []models.Teacher
	candidates  []models.Candidate
	schools     []models.School
	grades      []models.Grade
	subjects    []models.Subject
	exams       []models.Exam
	groups      []models.Group
	groupUsers  []models.GroupUser
	enrollments []models.EnrollmentRecord
	batches     []models.Batch
	authGroups  []models.AuthGroup

	takenIDs          map[string]bool
	existsCalls       int
	createdStudents   []map[string]string
	createdTeachers   []map[string]string
	createdCandidates []map[string]string
	nextID            int64
}

func newFakeDB() *fakeDB {
	return &fakeDB{takenIDs: map[string]bool{}, nextID: 1000}
}

func (db *fakeDB) FindUsers(_ context.Context, params map[string]string) ([]models.User, error) {
	var out []models.User
	for _, u := range db.users {
		if v, ok := params["first_name"]; ok && u.FirstName != v {
			continue
		}
		if v, ok := params["date_of_birth"]; ok && u.DateOfBirth != v {
			continue
		}
		if v, ok := params["gender"]; ok && u.Gender != v {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (db *fakeDB) FindUserByEmailOrPhone(_ context.Context, email, phone string) ([]models.User, error) {
	var out []models.User
	for _, u := range db.users {
		if (email != "" && u.Email == email) || (phone != "" && u.Phone == phone) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (db *fakeDB) FindStudents(_ context.Context, params map[string]string) ([]models.Student, error) {
	var out []models.Student
	for _, s := range db.students {
		if v, ok := params["student_id"]; ok && s.StudentID != v {
			continue
		}
		if v, ok := params["grade"]; ok && s.Grade != v {
			continue
		}
		if v, ok := params["category"]; ok && s.Category != v {
			continue
		}
		if v, ok := params["user_id"]; ok {
			if s.User == nil || strconv.FormatInt(s.User.ID, 10) != v {
				continue
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (db *fakeDB) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	db.existsCalls++
	if db.takenIDs[studentID] {
		return true, nil
	}
	for _, s := range db.students {
		if s.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (db *fakeDB) CreateStudent(_ context.Context, fields map[string]string) (*models.Student, error) {
	copied := map[string]string{}
	for k, v := range fields {
		copied[k] = v
	}
	db.createdStudents = append(db.createdStudents, copied)

	db.nextID++
	user := &models.User{
		ID:          db.nextID,
		FirstName:   fields["first_name"],
		DateOfBirth: fields["date_of_birth"],
		Gender:      fields["gender"],
	}
	db.users = append(db.users, *user)
	student := models.Student{
		ID:        db.nextID,
		StudentID: fields["student_id"],
		Grade:     fields["grade"],
		Category:  fields["category"],
		User:      user,
	}
	db.students = append(db.students, student)
	return &student, nil
}

func (db *fakeDB) FindTeachers(_ context.Context, params map[string]string) ([]models.Teacher, error) {
	var out []models.Teacher
	for _, teacher := range db.teachers {
		if v, ok := params["teacher_id"]; ok && teacher.TeacherID != v {
			continue
		}
		if v, ok := params["user_id"]; ok {
			if teacher.User == nil || strconv.FormatInt(teacher.User.ID, 10) != v {
				continue
			}
		}
		out = append(out, teacher)
	}
	return out, nil
}

func (db *fakeDB) TeacherIDExists(_ context.Context, teacherID string) (bool, error) {
	db.existsCalls++
	if db.takenIDs[teacherID] {
		return true, nil
	}
	for _, teacher := range db.teachers {
		if teacher.TeacherID == teacherID {
			return true, nil
		}
	}
	return false, nil
}

func (db *fakeDB) CreateTeacher(_ context.Context, fields map[string]string) (*models.Teacher, error) {
	copied := map[string]string{}
	for k, v := range fields {
		copied[k] = v
	}
	db.createdTeachers = append(db.createdTeachers, copied)

	db.nextID++
	teacher := models.Teacher{
		ID:        db.nextID,
		TeacherID: fields["teacher_id"],
		User:      &models.User{ID: db.nextID, FirstName: fields["first_name"], Phone: fields["phone"]},
	}
	db.teachers = append(db.teachers, teacher)
	return &teacher, nil
}

func (db *fakeDB) FindCandidates(_ context.Context, params map[string]string) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, candidate := range db.candidates {
		if v, ok := params["candidate_id"]; ok && candidate.CandidateID != v {
			continue
		}
		if v, ok := params["user_id"]; ok {
			if candidate.User == nil || strconv.FormatInt(candidate.User.ID, 10) != v {
				continue
			}
		}
		out = append(out, candidate)
	}
	return out, nil
}

func (db *fakeDB) CandidateIDExists(_ context.Context, candidateID string) (bool, error) {
	db.existsCalls++
	if db.takenIDs[candidateID] {
		return true, nil
	}
	for _, candidate := range db.candidates {
		if candidate.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (db *fakeDB) CreateCandidate(_ context.Context, fields map[string]string) (*models.Candidate, error) {
	copied := map[string]string{}
	for k, v := range fields {
		copied[k] = v
	}
	db.createdCandidates = append(db.createdCandidates, copied)

	db.nextID++
	candidate := models.Candidate{
		ID:          db.nextID,
		CandidateID: fields["candidate_id"],
		User:        &models.User{ID: db.nextID, FirstName: fields["first_name"], Phone: fields["phone"]},
	}
	db.candidates = append(db.candidates, candidate)
	return &candidate, nil
}

func (db *fakeDB) FindSchools(_ context.Context, params map[string]string) ([]models.School, error) {
	var out []models.School
	for _, school := range db.schools {
		if v, ok := params["name"]; ok && school.Name != v {
			continue
		}
		if v, ok := params["region"]; ok && school.Region != v {
			continue
		}
		if v, ok := params["district"]; ok && school.District != v {
			continue
		}
		out = append(out, school)
	}
	return out, nil
}

func (db *fakeDB) GetSchool(ctx context.Context, params map[string]string) (*models.School, error) {
	schools, err := db.FindSchools(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(schools) == 0 {
		return nil, apperrors.ErrSchoolNotFound
	}
	return &schools[0], nil
}

func (db *fakeDB) GetSchoolByNameAndRegion(ctx context.Context, name, region string) (*models.School, error) {
	return db.GetSchool(ctx, map[string]string{"name": name, "region": region})
}

func (db *fakeDB) GetSchoolByNameAndDistrict(ctx context.Context, name, district string) (*models.School, error) {
	return db.GetSchool(ctx, map[string]string{"name": name, "district": district})
}

func (db *fakeDB) GetGradeByNumber(_ context.Context, number int) (*models.Grade, error) {
	for _, grade := range db.grades {
		if grade.Number == number {
			return &grade, nil
		}
	}
	return nil, apperrors.ErrGradeNotFound
}

func (db *fakeDB) GetSubjectByName(_ context.Context, name string) (*models.Subject, error) {
	for _, subject := range db.subjects {
		if subject.Name == name {
			return &subject, nil
		}
	}
	return nil, apperrors.ErrSubjectNotFound
}

func (db *fakeDB) GetExamByName(_ context.Context, name string) (*models.Exam, error) {
	for _, exam := range db.exams {
		if exam.Name == name {
			return &exam, nil
		}
	}
	return nil, apperrors.ErrExamNotFound
}

func (db *fakeDB) FindGroups(_ context.Context, params map[string]string) ([]models.Group, error) {
	var out []models.Group
	for _, group := range db.groups {
		if v, ok := params["type"]; ok && string(group.Type) != v {
			continue
		}
		if v, ok := params["child_id"]; ok && strconv.FormatInt(group.ChildID, 10) != v {
			continue
		}
		out = append(out, group)
	}
	return out, nil
}

func (db *fakeDB) GetGroupByKindAndChild(ctx context.Context, kind models.GroupKind, childID int64) (*models.Group, error) {
	groups, err := db.FindGroups(ctx, map[string]string{
		"type":     string(kind),
		"child_id": strconv.FormatInt(childID, 10),
	})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperrors.ErrGroupNotFound
	}
	return &groups[0], nil
}

func (db *fakeDB) FindGroupUsers(_ context.Context, params map[string]string) ([]models.GroupUser, error) {
	var out []models.GroupUser
	for _, membership := range db.groupUsers {
		if v, ok := params["group_id"]; ok && strconv.FormatInt(membership.GroupID, 10) != v {
			continue
		}
		if v, ok := params["user_id"]; ok && strconv.FormatInt(membership.UserID, 10) != v {
			continue
		}
		out = append(out, membership)
	}
	return out, nil
}

func (db *fakeDB) CreateGroupUser(_ context.Context, membership models.GroupUser) (*models.GroupUser, error) {
	db.nextID++
	membership.ID = db.nextID
	db.groupUsers = append(db.groupUsers, membership)
	return &membership, nil
}

func (db *fakeDB) FindEnrollmentRecords(_ context.Context, params map[string]string) ([]models.EnrollmentRecord, error) {
	var out []models.EnrollmentRecord
	for _, record := range db.enrollments {
		if v, ok := params["group_id"]; ok && strconv.FormatInt(record.GroupID, 10) != v {
			continue
		}
		if v, ok := params["user_id"]; ok && strconv.FormatInt(record.UserID, 10) != v {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (db *fakeDB) CreateEnrollmentRecord(_ context.Context, record models.EnrollmentRecord) (*models.EnrollmentRecord, error) {
	db.nextID++
	record.ID = db.nextID
	db.enrollments = append(db.enrollments, record)
	return &record, nil
}

func (db *fakeDB) GetBatchByBatchID(_ context.Context, batchID string) (*models.Batch, error) {
	for _, batch := range db.batches {
		if batch.BatchID == batchID {
			return &batch, nil
		}
	}
	return nil, apperrors.ErrBatchNotFound
}

func (db *fakeDB) GetAuthGroupByName(_ context.Context, name string) (*models.AuthGroup, error) {
	for _, authGroup := range db.authGroups {
		if authGroup.Name == name {
			return &authGroup, nil
		}
	}
	return nil, apperrors.ErrAuthGroupNotFound
}

// stubPublisher records published events.
type stubPublisher struct {
	events []queue.RegistrationEvent
}

func (p *stubPublisher) PublishRegistration(_ context.Context, event queue.RegistrationEvent) {
	p.events = append(p.events, event)
}
