package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurukulhq/portal-backend/internal/app/models"
	"github.com/gurukulhq/portal-backend/internal/app/models/dto"
	"github.com/gurukulhq/portal-backend/internal/app/services"
	"github.com/gurukulhq/portal-backend/internal/pkg/auth"
)

// stubStudentStore backs the verification endpoint tests. Only FindStudents
// carries behavior.
type stubStudentStore struct {
	students []models.Student
}

func (s *stubStudentStore) FindStudents(_ context.Context, params map[string]string) ([]models.Student, error) {
	var out []models.Student
	for _, student := range s.students {
		if v, ok := params["student_id"]; ok && student.StudentID != v {
			continue
		}
		out = append(out, student)
	}
	return out, nil
}

func (s *stubStudentStore) StudentIDExists(context.Context, string) (bool, error) {
	return false, nil
}

func (s *stubStudentStore) CreateStudent(context.Context, map[string]string) (*models.Student, error) {
	return nil, nil
}

func newStudentTestRouter(store *stubStudentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := services.NewStudentService(services.StudentStores{Students: store}, nil, nil, nil)
	controller := NewStudentController(service, nil)

	router := gin.New()
	router.POST("/student", controller.Register)
	router.GET("/student/verify", controller.Verify)
	return router
}

func TestStudentRegisterRejectsMalformedBody(t *testing.T) {
	router := newStudentTestRouter(&stubStudentStore{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/student", strings.NewReader(`{"form_data": {}}`))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, dto.ErrorTypeValidation, envelope.ErrorType)
}

func TestStudentRegisterMissingFieldEnvelope(t *testing.T) {
	router := newStudentTestRouter(&stubStudentStore{})

	body := `{
		"form_data": {"first_name": "Asha", "gender": "Female", "grade": "9"},
		"id_generation": true,
		"auth_group": "HimachalStudents"
	}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/student", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "date_of_birth is not part of the request data", envelope.Detail)
	assert.Equal(t, dto.ErrorTypeValidation, envelope.ErrorType)
}

func TestStudentRegisterDisallowedParamEnvelope(t *testing.T) {
	router := newStudentTestRouter(&stubStudentStore{})

	body := `{
		"form_data": {"first_name": "Asha", "password": "nope"},
		"auth_group": "HimachalStudents"
	}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/student", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "Query Parameter password is not allowed!", envelope.Detail)
}

func TestStudentVerifyEndpoint(t *testing.T) {
	user := models.User{ID: 100, FirstName: "Asha"}
	router := newStudentTestRouter(&stubStudentStore{
		students: []models.Student{{ID: 100, StudentID: "264215111", User: &user}},
	})

	t.Run("existing student", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/student/verify?student_id=264215111", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.VerificationResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.IsValid)
		assert.Equal(t, "264215111", response.DisplayID)
		assert.Equal(t, "student_id", response.DisplayIDType)
	})

	t.Run("unknown student", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/student/verify?student_id=000000000", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.VerificationResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.IsValid)
	})

	t.Run("disallowed query parameter", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/student/verify?student_id=264215111&password=x", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var envelope dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "Query Parameter password is not allowed!", envelope.Detail)
	})
}

func TestAuthControllerCreateAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
	})
	controller := NewAuthController(services.NewAuthService(jwtService))

	router := gin.New()
	router.POST("/auth/create-access-token", controller.CreateAccessToken)

	t.Run("user token", func(t *testing.T) {
		body := `{"id": "user-42", "type": "user", "is_user_valid": true}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/create-access-token", strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var tokens dto.TokenResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tokens))
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("invalid type", func(t *testing.T) {
		body := `{"id": "x", "type": "robot"}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/create-access-token", strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		body := `{"type": "user"}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/create-access-token", strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
