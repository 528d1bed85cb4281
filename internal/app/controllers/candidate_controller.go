package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/app/services"
	"github.com/gurukulhq/portal-backend/internal/middleware"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
)

// CandidateController handles candidate registration and verification
type CandidateController struct {
	candidateService *services.CandidateService
}

// NewCandidateController creates a new CandidateController
func NewCandidateController(candidateService *services.CandidateService) *CandidateController {
	return &CandidateController{candidateService: candidateService}
}

// Register creates a candidate record
// @Summary Register a candidate
// @Description Hiring cohort candidates are keyed on their phone number; other cohorts get a generated identifier.
// @Tags candidate
// @Accept json
// @Produce json
// @Param request body dto.RegistrationRequest true "Registration form"
// @Success 200 {object} dto.CandidateRegistrationResponse
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter or missing field"
// @Router /candidate [post]
func (c *CandidateController) Register(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("invalid candidate registration payload")
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("form_data and auth_group are required", dto.ErrorTypeValidation))
		return
	}

	response, err := c.candidateService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Verify checks whether a candidate exists
// @Summary Verify a candidate
// @Tags candidate
// @Produce json
// @Param candidate_id query string true "Candidate identifier"
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter or missing candidate_id"
// @Router /candidate/verify [get]
func (c *CandidateController) Verify(ctx *gin.Context) {
	response, err := c.candidateService.Verify(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
