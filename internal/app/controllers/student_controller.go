package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/app/services"
	"github.com/gurukulhq/portal-backend/internal/middleware"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
)

// StudentController handles student registration, verification and listing
type StudentController struct {
	studentService   *services.StudentService
	directoryService *services.DirectoryService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, directoryService *services.DirectoryService) *StudentController {
	return &StudentController{
		studentService:   studentService,
		directoryService: directoryService,
	}
}

// Register creates a student record
// @Summary Register a student
// @Description Runs the onboarding workflow: deduplication against enrolled students, student_id synthesis when id_generation is set, record creation and group membership fan-out.
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.RegistrationRequest true "Registration form"
// @Success 200 {object} dto.StudentRegistrationResponse
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter or missing field"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure or identifier budget exhausted"
// @Failure 503 {object} dto.ErrorResponse "DB service unavailable"
// @Router /student [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("invalid student registration payload")
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("form_data and auth_group are required", dto.ErrorTypeValidation))
		return
	}

	response, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Verify checks whether a student exists
// @Summary Verify a student
// @Tags student
// @Produce json
// @Param student_id query string true "Student identifier"
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter or missing student_id"
// @Router /student/verify [get]
func (c *StudentController) Verify(ctx *gin.Context) {
	response, err := c.studentService.Verify(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// List returns students matching the query
// @Summary List students
// @Tags student
// @Produce json
// @Success 200 {array} models.Student
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter"
// @Router /student [get]
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.directoryService.ListStudents(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}
