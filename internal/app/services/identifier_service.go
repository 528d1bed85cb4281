package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
	"github.com/gurukulhq/portal-backend/internal/pkg/metrics"
)

// ExistsFunc reports whether a candidate identifier is already taken.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Role markers spliced into generated teacher and candidate identifiers.
const (
	teacherIDMarker   = "TR"
	candidateIDMarker = "CN"
)

// IdentifierService synthesizes display identifiers and retries on
// collision until an unused one is found or the budget runs out.
type IdentifierService struct {
	schools     SchoolStore
	retryBudget int

	// Overridable in tests.
	now    func() time.Time
	digits func() string
}

// NewIdentifierService creates a new IdentifierService
func NewIdentifierService(schools SchoolStore, retryBudget int) *IdentifierService {
	return &IdentifierService{
		schools:     schools,
		retryBudget: retryBudget,
		now:         time.Now,
		digits:      randomDigits,
	}
}

func randomDigits() string {
	return fmt.Sprintf("%03d", rand.Intn(1000))
}

// ClassCode returns the two-digit code of the year the grade is expected to
// graduate: last two digits of current year + (12 - grade).
func (s *IdentifierService) ClassCode(grade int) string {
	year := s.now().Year() + (12 - grade)
	return fmt.Sprintf("%02d", year%100)
}

func (s *IdentifierService) yearCode() string {
	return fmt.Sprintf("%02d", s.now().Year()%100)
}

// StudentID builds a student identifier: graduation-year code, then the
// school code resolved by (region, name), then three random digits.
func (s *IdentifierService) StudentID(ctx context.Context, grade int, schoolName, region string, exists ExistsFunc) (string, error) {
	school, err := s.schools.GetSchoolByNameAndRegion(ctx, schoolName, region)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, s.ClassCode(grade)+school.Code, exists)
}

// TeacherID builds a teacher identifier: year code, role marker, three
// random digits.
func (s *IdentifierService) TeacherID(ctx context.Context, exists ExistsFunc) (string, error) {
	return s.generate(ctx, s.yearCode()+teacherIDMarker, exists)
}

// CandidateID builds a candidate identifier for non-hiring cohorts.
func (s *IdentifierService) CandidateID(ctx context.Context, exists ExistsFunc) (string, error) {
	return s.generate(ctx, s.yearCode()+candidateIDMarker, exists)
}

// generate runs the collision-check loop: propose a candidate, check it
// against the store, accept the first unused one. Every attempt consumes
// one unit of the retry budget.
func (s *IdentifierService) generate(ctx context.Context, prefix string, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < s.retryBudget; attempt++ {
		candidate := prefix + s.digits()
		metrics.IDGenerationAttemptsTotal.Inc()

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}

		logger.Debug().
			Str("candidate", candidate).
			Int("attempt", attempt+1).
			Msg("identifier collision, retrying")
	}

	metrics.IDGenerationExhaustionsTotal.Inc()
	logger.Error().
		Str("prefix", prefix).
		Int("budget", s.retryBudget).
		Msg("identifier retry budget exhausted")
	return "", apperrors.NewCustomError(apperrors.ErrIDExhausted, "Max loops hit")
}
