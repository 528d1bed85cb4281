package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
)

func fixedTime(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestClassCode(t *testing.T) {
	db := newFakeDB()
	service := NewIdentifierService(db, 1000)
	service.now = fixedTime(2023)

	assert.Equal(t, "26", service.ClassCode(9))
	assert.Equal(t, "25", service.ClassCode(10))
	assert.Equal(t, "24", service.ClassCode(11))
	assert.Equal(t, "23", service.ClassCode(12))
}

func TestStudentIDShape(t *testing.T) {
	db := newFakeDB()
	db.schools = []models.School{{ID: 1, Name: "GSSS Jubbal", Code: "4215", Region: "Shimla"}}

	service := NewIdentifierService(db, 1000)
	service.now = fixedTime(2023)

	id, err := service.StudentID(context.Background(), 9, "GSSS Jubbal", "Shimla", db.StudentIDExists)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^264215[0-9]{3}$`), id)
}

func TestStudentIDUnknownSchool(t *testing.T) {
	db := newFakeDB()

	service := NewIdentifierService(db, 1000)

	_, err := service.StudentID(context.Background(), 9, "Nowhere", "Shimla", db.StudentIDExists)
	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
}

func TestSequentialIDsDistinct(t *testing.T) {
	db := newFakeDB()
	db.schools = []models.School{{ID: 1, Name: "GSSS Jubbal", Code: "4215", Region: "Shimla"}}

	service := NewIdentifierService(db, 1000)
	service.now = fixedTime(2023)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := service.StudentID(context.Background(), 9, "GSSS Jubbal", "Shimla", db.StudentIDExists)
		require.NoError(t, err)
		assert.False(t, seen[id], "identifier %s issued twice", id)
		seen[id] = true
		db.takenIDs[id] = true
	}
}

func TestRetryExhaustion(t *testing.T) {
	db := newFakeDB()
	db.schools = []models.School{{ID: 1, Name: "GSSS Jubbal", Code: "4215", Region: "Shimla"}}

	const budget = 7
	service := NewIdentifierService(db, budget)
	service.now = fixedTime(2023)

	attempts := 0
	alwaysTaken := func(ctx context.Context, id string) (bool, error) {
		attempts++
		return true, nil
	}

	_, err := service.StudentID(context.Background(), 9, "GSSS Jubbal", "Shimla", alwaysTaken)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIDExhausted)
	assert.Equal(t, budget, attempts, "every attempt consumes exactly one unit of the budget")

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Contains(t, custom.Message, "Max loops hit")
}

func TestGenerateStopsOnCheckError(t *testing.T) {
	db := newFakeDB()
	db.schools = []models.School{{ID: 1, Name: "GSSS Jubbal", Code: "4215", Region: "Shimla"}}

	service := NewIdentifierService(db, 1000)

	checkErr := apperrors.NewUpstreamError("db service returned status 500")
	_, err := service.StudentID(context.Background(), 9, "GSSS Jubbal", "Shimla",
		func(ctx context.Context, id string) (bool, error) {
			return false, checkErr
		})

	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailed)
}

func TestTeacherAndCandidateIDMarkers(t *testing.T) {
	db := newFakeDB()
	service := NewIdentifierService(db, 1000)
	service.now = fixedTime(2025)

	teacherID, err := service.TeacherID(context.Background(), db.TeacherIDExists)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^25TR[0-9]{3}$`), teacherID)

	candidateID, err := service.CandidateID(context.Background(), db.CandidateIDExists)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^25CN[0-9]{3}$`), candidateID)
}
