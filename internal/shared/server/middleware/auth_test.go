package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"peso-backend/internal/shared/auth"
)

func newAuthedRouter(t *testing.T, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", Auth())
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c), "role": UserRoleFromContext(c)})
	})
	return r
}

func signToken(t *testing.T, sub, role string) string {
	t.Helper()
	token, err := auth.SignJWT(auth.Claims{Sub: sub, Role: role})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newAuthedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newAuthedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", RoleJobseeker))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cases := []struct {
		name     string
		role     string
		required []string
		want     int
	}{
		{"employer allowed", RoleEmployer, []string{RoleEmployer}, http.StatusOK},
		{"jobseeker blocked", RoleJobseeker, []string{RoleEmployer}, http.StatusForbidden},
		{"admin allowed", RoleAdmin, []string{RoleAdmin}, http.StatusOK},
		{"superadmin passes admin check", RoleSuperadmin, []string{RoleAdmin}, http.StatusOK},
		{"admin blocked from superadmin", RoleAdmin, []string{RoleSuperadmin}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newAuthedRouter(t, tc.required...)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", tc.role))
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}
}
