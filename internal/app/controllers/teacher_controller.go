package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/app/services"
	"github.com/gurukulhq/portal-backend/internal/middleware"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
)

// TeacherController handles teacher registration, verification and listing
type TeacherController struct {
	teacherService   *services.TeacherService
	directoryService *services.DirectoryService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService, directoryService *services.DirectoryService) *TeacherController {
	return &TeacherController{
		teacherService:   teacherService,
		directoryService: directoryService,
	}
}

// Register creates a teacher record
// @Summary Register a teacher
// @Tags teacher
// @Accept json
// @Produce json
// @Param request body dto.RegistrationRequest true "Registration form"
// @Success 200 {object} dto.TeacherRegistrationResponse
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter or missing field"
// @Router /teacher [post]
func (c *TeacherController) Register(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("invalid teacher registration payload")
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("form_data and auth_group are required", dto.ErrorTypeValidation))
		return
	}

	response, err := c.teacherService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Verify checks whether a teacher exists
// @Summary Verify a teacher
// @Tags teacher
// @Produce json
// @Param teacher_id query string true "Teacher identifier"
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter or missing teacher_id"
// @Router /teacher/verify [get]
func (c *TeacherController) Verify(ctx *gin.Context) {
	response, err := c.teacherService.Verify(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// List returns teachers matching the query
// @Summary List teachers
// @Tags teacher
// @Produce json
// @Success 200 {array} models.Teacher
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter"
// @Router /teacher [get]
func (c *TeacherController) List(ctx *gin.Context) {
	teachers, err := c.directoryService.ListTeachers(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}
