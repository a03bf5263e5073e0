//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "tourdesk/internal/handler/dto/request"
	"tourdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Staff accounts are provisioned through the environment, not a table, so
// tests share these well-known entries wired into the test config.
const (
	AgentEmail = "agent@tourdesk.example"
	AdminEmail = "admin@tourdesk.example"
	Password   = "password123"

	// bcrypt hash of Password
	PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

// StaffAccounts returns the AUTH_STAFF_ACCOUNTS entries for the test config.
func StaffAccounts() []string {
	return []string{
		AgentEmail + ":" + PasswordHash + ":agent",
		AdminEmail + ":" + PasswordHash + ":admin",
	}
}

func LoginStaff(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Extract access token from cookie
	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func LoginAgent(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return LoginStaff(t, router, AgentEmail, Password)
}

func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return LoginStaff(t, router, AdminEmail, Password)
}

func LogoutStaff(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
