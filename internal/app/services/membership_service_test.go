package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/config"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
)

func testBatchRules() map[string]config.BatchRule {
	return map[string]config.BatchRule{
		"HimachalStudents": {Template: "HP-{grade}-Selection-25", Grades: []string{"9", "10", "11", "12"}},
		"AllIndiaStudents": {Template: "AllIndiaStudents_{grade}_24_A001", Grades: []string{"11", "12"}},
		"HiringCandidates": {Template: "H-CN-25"},
	}
}

func seedMembershipData(db *fakeDB) {
	db.schools = []models.School{{ID: 1, Name: "GSSS Jubbal", Code: "4215", Region: "Shimla", District: "Shimla"}}
	db.grades = []models.Grade{{ID: 5, Number: 9}}
	db.authGroups = []models.AuthGroup{{ID: 2, Name: "HimachalStudents"}}
	db.batches = []models.Batch{{ID: 3, Name: "HP 9 Selection", BatchID: "HP-9-Selection-25"}}
	db.groups = []models.Group{
		{ID: 10, Type: models.GroupKindSchool, ChildID: 1},
		{ID: 11, Type: models.GroupKindAuthGroup, ChildID: 2},
		{ID: 12, Type: models.GroupKindBatch, ChildID: 3},
		{ID: 13, Type: models.GroupKindGrade, ChildID: 5},
	}
}

func newMembershipService(db *fakeDB) *MembershipService {
	return NewMembershipService(MembershipStores{
		Groups:      db,
		GroupUsers:  db,
		Enrollments: db,
		Grades:      db,
		Schools:     db,
		Batches:     db,
		AuthGroups:  db,
	}, testBatchRules(), "2025-2026")
}

func TestBatchName(t *testing.T) {
	service := newMembershipService(newFakeDB())

	t.Run("template with grade placeholder", func(t *testing.T) {
		assert.Equal(t, "HP-9-Selection-25", service.BatchName("HimachalStudents", "9"))
	})

	t.Run("grade outside the rule's range", func(t *testing.T) {
		assert.Equal(t, "", service.BatchName("AllIndiaStudents", "9"))
		assert.Equal(t, "AllIndiaStudents_11_24_A001", service.BatchName("AllIndiaStudents", "11"))
	})

	t.Run("static template ignores grade", func(t *testing.T) {
		assert.Equal(t, "H-CN-25", service.BatchName("HiringCandidates", ""))
	})

	t.Run("unknown auth group", func(t *testing.T) {
		assert.Equal(t, "", service.BatchName("UnknownGroup", "9"))
	})
}

func TestEnrollUser(t *testing.T) {
	db := newFakeDB()
	seedMembershipData(db)
	service := newMembershipService(db)

	form := map[string]string{
		"grade":       "9",
		"school_name": "GSSS Jubbal",
		"district":    "Shimla",
	}

	err := service.EnrollUser(context.Background(), 100, "HimachalStudents", form)
	require.NoError(t, err)

	groupIDs := map[int64]bool{}
	for _, membership := range db.groupUsers {
		assert.Equal(t, int64(100), membership.UserID)
		assert.Equal(t, "2025-2026", membership.AcademicYear)
		groupIDs[membership.GroupID] = true
	}
	assert.Equal(t, map[int64]bool{10: true, 11: true, 12: true, 13: true}, groupIDs)

	require.Len(t, db.enrollments, 1)
	record := db.enrollments[0]
	assert.Equal(t, int64(10), record.GroupID)
	assert.Equal(t, models.GroupKindSchool, record.GroupType)
	assert.Equal(t, int64(100), record.UserID)
	assert.Equal(t, int64(5), record.GradeID)
	assert.True(t, record.IsCurrent)
}

func TestEnrollUserIdempotentMemberships(t *testing.T) {
	db := newFakeDB()
	seedMembershipData(db)
	service := newMembershipService(db)

	form := map[string]string{"grade": "9"}

	require.NoError(t, service.EnrollUser(context.Background(), 100, "HimachalStudents", form))
	created := len(db.groupUsers)

	require.NoError(t, service.EnrollUser(context.Background(), 100, "HimachalStudents", form))
	assert.Equal(t, created, len(db.groupUsers), "re-enrolling must not duplicate memberships")
}

func TestEnrollUserSchoolRequiresDistrict(t *testing.T) {
	db := newFakeDB()
	seedMembershipData(db)
	service := newMembershipService(db)

	form := map[string]string{
		"grade":       "9",
		"school_name": "GSSS Jubbal",
	}

	err := service.EnrollUser(context.Background(), 100, "HimachalStudents", form)

	require.Error(t, err)
	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "district is not part of the request data", custom.Message)
}

func TestEnrollUserUnknownAuthGroup(t *testing.T) {
	db := newFakeDB()
	seedMembershipData(db)
	service := newMembershipService(db)

	err := service.EnrollUser(context.Background(), 100, "MissingGroup", map[string]string{})
	assert.ErrorIs(t, err, apperrors.ErrAuthGroupNotFound)
}

// Partial fan-out stays when a later step fails.
func TestEnrollUserNoRollback(t *testing.T) {
	db := newFakeDB()
	seedMembershipData(db)
	// Remove the grade record so the grade step fails after auth group and
	// batch memberships were created.
	db.grades = nil
	service := newMembershipService(db)

	form := map[string]string{"grade": "9"}

	err := service.EnrollUser(context.Background(), 100, "HimachalStudents", form)

	require.ErrorIs(t, err, apperrors.ErrGradeNotFound)
	assert.Len(t, db.groupUsers, 2)
}
