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

// HiringAuthGroup is the cohort whose candidates are keyed on their phone
// number instead of a generated identifier.
const HiringAuthGroup = "HiringCandidates"

// CandidateService implements candidate registration and verification.
type CandidateService struct {
	users       UserStore
	candidates  CandidateStore
	subjects    SubjectStore
	exams       ExamStore
	identifiers *IdentifierService
	memberships *MembershipService
	events      EventPublisher
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(users UserStore, candidates CandidateStore, subjects SubjectStore, exams ExamStore, identifiers *IdentifierService, memberships *MembershipService, events EventPublisher) *CandidateService {
	return &CandidateService{
		users:       users,
		candidates:  candidates,
		subjects:    subjects,
		exams:       exams,
		identifiers: identifiers,
		memberships: memberships,
		events:      events,
	}
}

// Register creates a candidate record. Hiring cohort candidates use their
// phone number as the candidate_id; other cohorts get a generated one.
func (s *CandidateService) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.CandidateRegistrationResponse, error) {
	form, err := mapping.ValidateQueryParams(req.FormData,
		mapping.Merge(mapping.UserQueryParams, mapping.CandidateQueryParams))
	if err != nil {
		return nil, err
	}

	if err := mapping.RequireFields(form, "first_name", "phone"); err != nil {
		return nil, err
	}

	if req.AuthGroup == HiringAuthGroup {
		candidateID := form["phone"]
		exists, err := s.candidates.CandidateIDExists(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		if exists {
			metrics.DeduplicationHitsTotal.WithLabelValues(string(models.RoleCandidate)).Inc()
			metrics.RegistrationsTotal.WithLabelValues(string(models.RoleCandidate), "existing").Inc()
			s.events.PublishRegistration(ctx, queue.RegistrationEvent{
				Role:          string(models.RoleCandidate),
				DisplayID:     candidateID,
				AuthGroup:     req.AuthGroup,
				AlreadyExists: true,
			})
			return &dto.CandidateRegistrationResponse{CandidateID: candidateID, AlreadyExists: true}, nil
		}
		form["candidate_id"] = candidateID
	} else if req.IDGeneration {
		existingID, err := s.findExistingCandidate(ctx, form)
		if err != nil {
			return nil, err
		}
		if existingID != "" {
			metrics.DeduplicationHitsTotal.WithLabelValues(string(models.RoleCandidate)).Inc()
			metrics.RegistrationsTotal.WithLabelValues(string(models.RoleCandidate), "existing").Inc()
			s.events.PublishRegistration(ctx, queue.RegistrationEvent{
				Role:          string(models.RoleCandidate),
				DisplayID:     existingID,
				AuthGroup:     req.AuthGroup,
				AlreadyExists: true,
			})
			return &dto.CandidateRegistrationResponse{CandidateID: existingID, AlreadyExists: true}, nil
		}

		candidateID, err := s.identifiers.CandidateID(ctx, s.candidates.CandidateIDExists)
		if err != nil {
			return nil, err
		}
		form["candidate_id"] = candidateID
	} else if err := mapping.RequireFields(form, "candidate_id"); err != nil {
		return nil, err
	}

	payload := normalizeForm(form)
	payload["role"] = string(models.RoleCandidate)

	if form["subject"] != "" {
		subject, err := s.subjects.GetSubjectByName(ctx, form["subject"])
		if err != nil && !errors.Is(err, apperrors.ErrSubjectNotFound) {
			return nil, err
		}
		if subject != nil {
			payload["subject_id"] = strconv.FormatInt(subject.ID, 10)
		}
	}

	if form["exam"] != "" {
		exam, err := s.exams.GetExamByName(ctx, form["exam"])
		if err != nil && !errors.Is(err, apperrors.ErrExamNotFound) {
			return nil, err
		}
		if exam != nil {
			payload["exam_id"] = strconv.FormatInt(exam.ID, 10)
		}
	}

	created, err := s.candidates.CreateCandidate(ctx, payload)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(string(models.RoleCandidate), "failed").Inc()
		return nil, err
	}

	if created.User != nil {
		if err := s.memberships.EnrollUser(ctx, created.User.ID, req.AuthGroup, form); err != nil {
			metrics.RegistrationsTotal.WithLabelValues(string(models.RoleCandidate), "failed").Inc()
			return nil, err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues(string(models.RoleCandidate), "created").Inc()
	s.events.PublishRegistration(ctx, queue.RegistrationEvent{
		Role:      string(models.RoleCandidate),
		DisplayID: created.CandidateID,
		UserID:    userIDString(created.User),
		AuthGroup: req.AuthGroup,
	})

	return &dto.CandidateRegistrationResponse{CandidateID: created.CandidateID}, nil
}

func (s *CandidateService) findExistingCandidate(ctx context.Context, form map[string]string) (string, error) {
	users, err := s.users.FindUserByEmailOrPhone(ctx, form["email"], form["phone"])
	if err != nil {
		return "", err
	}

	for _, user := range users {
		candidates, err := s.candidates.FindCandidates(ctx, map[string]string{
			"user_id": strconv.FormatInt(user.ID, 10),
		})
		if err != nil {
			return "", err
		}
		if len(candidates) > 0 {
			return candidates[0].CandidateID, nil
		}
	}

	return "", nil
}

// Verify checks whether a candidate matching the query exists.
func (s *CandidateService) Verify(ctx context.Context, params map[string]string) (*dto.VerificationResponse, error) {
	validated, err := mapping.ValidateQueryParams(params,
		mapping.Merge(mapping.UserQueryParams, mapping.CandidateQueryParams))
	if err != nil {
		return nil, err
	}
	if err := mapping.RequireFields(validated, "candidate_id"); err != nil {
		return nil, err
	}

	candidates, err := s.candidates.FindCandidates(ctx, validated)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &dto.VerificationResponse{IsValid: false}, nil
	}

	candidate := candidates[0]
	return &dto.VerificationResponse{
		IsValid:       true,
		UserID:        userIDString(candidate.User),
		DisplayID:     candidate.CandidateID,
		DisplayIDType: "candidate_id",
	}, nil
}
