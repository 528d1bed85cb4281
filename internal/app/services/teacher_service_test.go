package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
)

func newTeacherService(db *fakeDB) (*TeacherService, *stubPublisher) {
	identifier := NewIdentifierService(db, 1000)
	identifier.now = fixedTime(2025)

	publisher := &stubPublisher{}
	return NewTeacherService(db, db, db, identifier, newMembershipService(db), publisher), publisher
}

func TestRegisterNewTeacher(t *testing.T) {
	db := newFakeDB()
	seedMembershipData(db)
	db.subjects = []models.Subject{{ID: 8, Name: "Physics"}}
	service, publisher := newTeacherService(db)

	response, err := service.Register(context.Background(), &dto.RegistrationRequest{
		FormData: map[string]string{
			"first_name": "Meera",
			"phone":      "9812345678",
			"subject":    "Physics",
		},
		IDGeneration: true,
		AuthGroup:    "HimachalStudents",
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^25TR[0-9]{3}$`), response.TeacherID)
	assert.False(t, response.AlreadyExists)

	require.Len(t, db.createdTeachers, 1)
	assert.Equal(t, "8", db.createdTeachers[0]["subject_id"])
	assert.Equal(t, "teacher", db.createdTeachers[0]["role"])

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "teacher", publisher.events[0].Role)
}

func TestRegisterTeacherDeduplicatesOnContact(t *testing.T) {
	db := newFakeDB()
	seedMembershipData(db)
	user := models.User{ID: 50, FirstName: "Meera", Phone: "9812345678"}
	db.users = []models.User{user}
	db.teachers = []models.Teacher{{ID: 50, TeacherID: "25TR001", User: &user}}
	service, _ := newTeacherService(db)

	response, err := service.Register(context.Background(), &dto.RegistrationRequest{
		FormData: map[string]string{
			"first_name": "Meera",
			"phone":      "9812345678",
		},
		IDGeneration: true,
		AuthGroup:    "HimachalStudents",
	})

	require.NoError(t, err)
	assert.True(t, response.AlreadyExists)
	assert.Equal(t, "25TR001", response.TeacherID)
	assert.Empty(t, db.createdTeachers)
}

func TestVerifyTeacher(t *testing.T) {
	db := newFakeDB()
	user := models.User{ID: 50, FirstName: "Meera"}
	db.teachers = []models.Teacher{{ID: 50, TeacherID: "25TR001", User: &user}}
	service, _ := newTeacherService(db)

	response, err := service.Verify(context.Background(), map[string]string{"teacher_id": "25TR001"})

	require.NoError(t, err)
	assert.True(t, response.IsValid)
	assert.Equal(t, "25TR001", response.DisplayID)
	assert.Equal(t, "teacher_id", response.DisplayIDType)
	assert.Equal(t, "50", response.UserID)

	response, err = service.Verify(context.Background(), map[string]string{"teacher_id": "unknown"})
	require.NoError(t, err)
	assert.False(t, response.IsValid)
}
