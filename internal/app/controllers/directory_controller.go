package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/services"
	"github.com/gurukulhq/portal-backend/internal/middleware"
)

// DirectoryController serves the read passthrough endpoints
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

// ListUsers returns users matching the query
// @Summary List users
// @Tags directory
// @Produce json
// @Success 200 {array} models.User
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter"
// @Router /user [get]
func (c *DirectoryController) ListUsers(ctx *gin.Context) {
	users, err := c.directoryService.ListUsers(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// ListSchools returns schools matching the query
// @Summary List schools
// @Tags directory
// @Produce json
// @Success 200 {array} models.School
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter"
// @Router /school [get]
func (c *DirectoryController) ListSchools(ctx *gin.Context) {
	schools, err := c.directoryService.ListSchools(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schools)
}

// ListGroups returns groups matching the query
// @Summary List groups
// @Tags directory
// @Produce json
// @Success 200 {array} models.Group
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter"
// @Router /group [get]
func (c *DirectoryController) ListGroups(ctx *gin.Context) {
	groups, err := c.directoryService.ListGroups(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// ListGroupUsers returns group memberships matching the query
// @Summary List group memberships
// @Tags directory
// @Produce json
// @Success 200 {array} models.GroupUser
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter"
// @Router /group-user [get]
func (c *DirectoryController) ListGroupUsers(ctx *gin.Context) {
	memberships, err := c.directoryService.ListGroupUsers(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, memberships)
}

// ListEnrollmentRecords returns enrollment records matching the query
// @Summary List enrollment records
// @Tags directory
// @Produce json
// @Success 200 {array} models.EnrollmentRecord
// @Failure 400 {object} dto.ErrorResponse "Disallowed parameter"
// @Router /enrollment-record [get]
func (c *DirectoryController) ListEnrollmentRecords(ctx *gin.Context) {
	records, err := c.directoryService.ListEnrollmentRecords(ctx.Request.Context(), queryMap(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}
