package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the portal's error envelope.
// Connectivity failures toward the DB service surface as 503/504 so callers
// can tell the portal apart from its upstream.
func HandleAPIError(c *gin.Context, err error) {
	detail := errorDetail(err)

	switch {
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail, dto.ErrorTypeValidation))

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail, dto.ErrorTypeAuth))

	case isNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail, dto.ErrorTypeNotFound))

	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail, dto.ErrorTypeConnection))

	case errors.Is(err, apperrors.ErrUpstreamTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.NewErrorResponse(detail, dto.ErrorTypeTimeout))

	case errors.Is(err, apperrors.ErrUpstreamFailed), errors.Is(err, apperrors.ErrMalformedResponse):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail, dto.ErrorTypeUpstream))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail, dto.ErrorTypeInternal))
	}
}

// errorDetail prefers the message attached to a CustomError over the
// wrapped chain's text.
func errorDetail(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return err.Error()
}

var notFoundErrors = []error{
	apperrors.ErrResourceNotFound,
	apperrors.ErrUserNotFound,
	apperrors.ErrStudentNotFound,
	apperrors.ErrTeacherNotFound,
	apperrors.ErrCandidateNotFound,
	apperrors.ErrSchoolNotFound,
	apperrors.ErrGradeNotFound,
	apperrors.ErrSubjectNotFound,
	apperrors.ErrExamNotFound,
	apperrors.ErrGroupNotFound,
	apperrors.ErrBatchNotFound,
	apperrors.ErrAuthGroupNotFound,
}

func isNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Recovery returns panics as a plain internal error envelope instead of an
// empty reply.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse("internal server error", dto.ErrorTypeInternal))
	})
}
