package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gurukulhq/portal-backend/internal/app/controllers"
	"github.com/gurukulhq/portal-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Public Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/create-access-token", ctrls.Auth.CreateAccessToken)
		auth.POST("/refresh-token", ctrls.Auth.RefreshToken)
		auth.GET("/verify", ctrls.Auth.Verify)
	}

	// --- Authenticated routes ---
	// Every record endpoint requires a bearer token issued by the auth
	// router; frontends call with their organization token.
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	students := authenticated.Group("/student")
	{
		students.POST("", ctrls.Student.Register)
		students.GET("", ctrls.Student.List)
		students.GET("/verify", ctrls.Student.Verify)
	}

	teachers := authenticated.Group("/teacher")
	{
		teachers.POST("", ctrls.Teacher.Register)
		teachers.GET("", ctrls.Teacher.List)
		teachers.GET("/verify", ctrls.Teacher.Verify)
	}

	candidates := authenticated.Group("/candidate")
	{
		candidates.POST("", ctrls.Candidate.Register)
		candidates.GET("/verify", ctrls.Candidate.Verify)
	}

	// Read passthroughs
	authenticated.GET("/user", ctrls.Directory.ListUsers)
	authenticated.GET("/school", ctrls.Directory.ListSchools)
	authenticated.GET("/group", ctrls.Directory.ListGroups)
	authenticated.GET("/group-user", ctrls.Directory.ListGroupUsers)
	authenticated.GET("/enrollment-record", ctrls.Directory.ListEnrollmentRecords)
}
