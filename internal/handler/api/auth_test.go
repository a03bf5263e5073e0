//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"tourdesk/internal/handler/api"
	resdto "tourdesk/internal/handler/dto/response"
	"tourdesk/internal/pkg/config"
	"tourdesk/internal/pkg/cookie"
	"tourdesk/internal/usecase"
	"tourdesk/tests/common/httptest"
	"tourdesk/tests/common/testutil"
	usecasemock "tourdesk/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("staff_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// assertFlatError decodes the auth endpoints' {"error": "..."} body.
func (s *AuthHandlerTestSuite) assertFlatError(body []byte, expectedMsg string) {
	var errorResponse map[string]string
	s.Require().NoError(json.Unmarshal(body, &errorResponse))
	if expectedMsg != "" {
		s.Contains(errorResponse["error"], expectedMsg)
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := map[string]any{
		"email":    "agent@tourdesk.example",
		"password": "password123",
	}
	authorized := &usecase.AuthorizedStaff{
		ID:    uuid.New(),
		Email: "agent@tourdesk.example",
		Role:  "agent",
	}
	expectedToken := "test-jwt-token"

	s.Run("success: returns 200 OK with token and staff, sets cookie", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(expectedToken, authorized, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.AccessToken)
		s.Equal(authorized.Email, response.Staff.Email)

		setCookie := rec.Header().Get("Set-Cookie")
		s.Contains(setCookie, cookie.AccessTokenCookieName+"="+expectedToken)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "invalid email format", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil)},
			{name: "password too short (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code)
				s.assertFlatError(rec.Body.Bytes(), "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized on invalid credentials", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.assertFlatError(rec.Body.Bytes(), "Invalid email or password")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, errors.New("directory unavailable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.assertFlatError(rec.Body.Bytes(), "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Contains(rec.Header().Get("Set-Cookie"), cookie.AccessTokenCookieName+"=")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	authorized := &usecase.AuthorizedStaff{
		ID:    uuid.New(),
		Email: "agent@tourdesk.example",
		Role:  "agent",
	}

	s.Run("success: returns the current staff member", func() {
		s.mockAuth.EXPECT().GetCurrentStaff(gomock.Any(), gomock.Any()).
			Return(authorized, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response usecase.AuthorizedStaff
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(authorized.Email, response.Email)
		s.Equal("agent", response.Role)
	})

	s.Run("error: 401 when staff_id is missing from context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.assertFlatError(rec.Body.Bytes(), "Not authenticated")
	})

	s.Run("error: 404 when the account disappeared from the directory", func() {
		s.mockAuth.EXPECT().GetCurrentStaff(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrStaffNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
		s.assertFlatError(rec.Body.Bytes(), "Staff account not found")
	})
}
