// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gurukulhq/portal-backend/internal/app/services"
)

// Controllers holds every controller instance
type Controllers struct {
	Auth      *AuthController
	Student   *StudentController
	Teacher   *TeacherController
	Candidate *CandidateController
	Directory *DirectoryController
}

// NewControllers wires the controllers over the service layer.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(svcs.Auth),
		Student:   NewStudentController(svcs.Student, svcs.Directory),
		Teacher:   NewTeacherController(svcs.Teacher, svcs.Directory),
		Candidate: NewCandidateController(svcs.Candidate),
		Directory: NewDirectoryController(svcs.Directory),
	}
}

// queryMap flattens the request's query string into the map form the
// services validate. Repeated keys keep their first value.
func queryMap(ctx *gin.Context) map[string]string {
	params := map[string]string{}
	for key, values := range ctx.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
