package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurukulhq/portal-backend/internal/pkg/auth"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
	})

	router := gin.New()
	protected := router.Group("")
	protected.Use(NewAuthMiddleware(jwtService).JWTAuth())
	protected.GET("/private", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(ContextSubjectKey)})
	})

	return router, jwtService
}

func TestJWTAuth(t *testing.T) {
	router, jwtService := newProtectedRouter(t)

	t.Run("valid token passes", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken("user-42", nil)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/private", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "user-42")
	})

	t.Run("missing header rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/private", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/private", nil)
		request.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenExp: -time.Minute,
		})
		token, err := expiredService.GenerateAccessToken("user-42", nil)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/private", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token expired")
	})
}
