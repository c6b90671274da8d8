package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandresort/config"
	"grandresort/infras/jwt"
	jwtMocks "grandresort/infras/jwt/mocks"
	"grandresort/infras/otel/mocks"
	"grandresort/permissions"
	"grandresort/transport/http/middleware"
)

func newGuardedMux(t *testing.T) (chi.Router, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	authRole := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), permissions.Get(), &config.Config{})

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux := chi.NewRouter()
	mux.Use(authRole.Auth)
	mux.Use(authRole.RBAC)
	mux.Get("/health", ok)
	mux.Get("/swagger/*", ok)
	mux.Get("/v1/invoices", ok)
	mux.Get("/v1/internal/report", ok)

	return mux, mockJWT
}

func expectValidToken(mockJWT *jwtMocks.MockJWT, role string) {
	mockJWT.EXPECT().
		ValidateToken(gomock.Any(), "token", jwt.AccessToken).
		Return(&jwt.Claims{
			UserID:  "staff-1",
			Email:   "staff@grandresort.example",
			Role:    role,
			TokenID: "token-1",
		}, nil)
}

// Infrastructure endpoints stay reachable without credentials; a
// load balancer probing /health carries no Authorization header.
func TestAuthMiddleware_PublicEndpointsSkipAuth(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "health probe", target: "/health"},
		{name: "swagger ui", target: "/swagger/index.html"},
		{name: "wizard entry", target: "/v1/rooms/available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := newGuardedMux(t)
			mux.Get("/v1/rooms/available", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAuthMiddleware_MissingHeaderIsUnauthorized(t *testing.T) {
	mux, _ := newGuardedMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRBACMiddleware_RoleGate(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "accountant may list invoices", role: "ACCOUNTANT", wantCode: http.StatusOK},
		{name: "housekeeping may not", role: "HOUSEKEEPING", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockJWT := newGuardedMux(t)
			expectValidToken(mockJWT, tt.role)

			req := httptest.NewRequest(http.MethodGet, "/v1/invoices", nil)
			req.Header.Set("Authorization", "Bearer token")

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

// A route registered on the mux but absent from the permission table must
// be denied, not waved through.
func TestRBACMiddleware_UnlistedEndpointIsDenied(t *testing.T) {
	mux, mockJWT := newGuardedMux(t)
	expectValidToken(mockJWT, "SUPER_ADMIN")

	req := httptest.NewRequest(http.MethodGet, "/v1/internal/report", nil)
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
