package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/config"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
	"github.com/gurukulhq/portal-backend/internal/pkg/mapping"
)

// MembershipStores bundles the stores the fan-out touches.
type MembershipStores struct {
	Groups      GroupStore
	GroupUsers  GroupUserStore
	Enrollments EnrollmentStore
	Grades      GradeStore
	Schools     SchoolStore
	Batches     BatchStore
	AuthGroups  AuthGroupStore
}

// MembershipService links a freshly created user into its groups: the auth
// group, the batch named by the auth group's rule, the grade group and the
// school group. Memberships are created in that order; the first failure
// aborts and nothing already created is rolled back.
type MembershipService struct {
	stores       MembershipStores
	batchRules   map[string]config.BatchRule
	academicYear string

	now func() time.Time
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(stores MembershipStores, batchRules map[string]config.BatchRule, academicYear string) *MembershipService {
	return &MembershipService{
		stores:       stores,
		batchRules:   batchRules,
		academicYear: academicYear,
		now:          time.Now,
	}
}

// BatchName evaluates the batch rule for an auth group and grade. It returns
// an empty string when no rule applies.
func (s *MembershipService) BatchName(authGroup, grade string) string {
	rule, ok := s.batchRules[authGroup]
	if !ok {
		return ""
	}
	if len(rule.Grades) > 0 {
		applies := false
		for _, g := range rule.Grades {
			if g == grade {
				applies = true
				break
			}
		}
		if !applies {
			return ""
		}
	}
	return strings.ReplaceAll(rule.Template, "{grade}", grade)
}

// EnrollUser creates the group memberships for a registered user.
func (s *MembershipService) EnrollUser(ctx context.Context, userID int64, authGroup string, form map[string]string) error {
	if err := s.enrollAuthGroup(ctx, userID, authGroup); err != nil {
		return err
	}

	if batchName := s.BatchName(authGroup, form["grade"]); batchName != "" {
		if err := s.enrollBatch(ctx, userID, batchName); err != nil {
			return err
		}
	}

	var gradeID int64
	if form["grade"] != "" {
		id, err := s.enrollGrade(ctx, userID, form["grade"])
		if err != nil {
			return err
		}
		gradeID = id
	}

	if form["school_name"] != "" {
		if err := s.enrollSchool(ctx, userID, form, gradeID); err != nil {
			return err
		}
	}

	return nil
}

func (s *MembershipService) enrollAuthGroup(ctx context.Context, userID int64, name string) error {
	authGroup, err := s.stores.AuthGroups.GetAuthGroupByName(ctx, name)
	if err != nil {
		return err
	}
	return s.addMembership(ctx, userID, models.GroupKindAuthGroup, authGroup.ID)
}

func (s *MembershipService) enrollBatch(ctx context.Context, userID int64, batchName string) error {
	batch, err := s.stores.Batches.GetBatchByBatchID(ctx, batchName)
	if err != nil {
		return err
	}
	return s.addMembership(ctx, userID, models.GroupKindBatch, batch.ID)
}

func (s *MembershipService) enrollGrade(ctx context.Context, userID int64, gradeValue string) (int64, error) {
	number, err := strconv.Atoi(gradeValue)
	if err != nil {
		return 0, err
	}
	grade, err := s.stores.Grades.GetGradeByNumber(ctx, number)
	if err != nil {
		return 0, err
	}
	return grade.ID, s.addMembership(ctx, userID, models.GroupKindGrade, grade.ID)
}

// enrollSchool also writes the enrollment record the deduplication lookup
// reads on later registrations.
func (s *MembershipService) enrollSchool(ctx context.Context, userID int64, form map[string]string, gradeID int64) error {
	if err := mapping.RequireFields(form, "district"); err != nil {
		return err
	}

	school, err := s.stores.Schools.GetSchoolByNameAndDistrict(ctx, form["school_name"], form["district"])
	if err != nil {
		return err
	}

	group, err := s.stores.Groups.GetGroupByKindAndChild(ctx, models.GroupKindSchool, school.ID)
	if err != nil {
		return err
	}

	if err := s.linkUser(ctx, userID, group.ID); err != nil {
		return err
	}

	_, err = s.stores.Enrollments.CreateEnrollmentRecord(ctx, models.EnrollmentRecord{
		AcademicYear: s.academicYear,
		IsCurrent:    true,
		StartDate:    s.now().Format("2006-01-02"),
		GroupID:      group.ID,
		GroupType:    models.GroupKindSchool,
		UserID:       userID,
		GradeID:      gradeID,
	})
	return err
}

func (s *MembershipService) addMembership(ctx context.Context, userID int64, kind models.GroupKind, childID int64) error {
	group, err := s.stores.Groups.GetGroupByKindAndChild(ctx, kind, childID)
	if err != nil {
		return err
	}
	return s.linkUser(ctx, userID, group.ID)
}

// linkUser creates the group-user row unless the membership already exists.
func (s *MembershipService) linkUser(ctx context.Context, userID, groupID int64) error {
	existing, err := s.stores.GroupUsers.FindGroupUsers(ctx, map[string]string{
		"group_id": strconv.FormatInt(groupID, 10),
		"user_id":  strconv.FormatInt(userID, 10),
	})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Debug().
			Int64("group_id", groupID).
			Int64("user_id", userID).
			Msg("group membership already present")
		return nil
	}

	_, err = s.stores.GroupUsers.CreateGroupUser(ctx, models.GroupUser{
		GroupID:      groupID,
		UserID:       userID,
		AcademicYear: s.academicYear,
		StartDate:    s.now().Format("2006-01-02"),
	})
	return err
}
