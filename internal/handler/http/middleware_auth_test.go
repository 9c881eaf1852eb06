package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/metrics"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.authenticate(next).ServeHTTP(rr, req)
	return rr
}

func authOutcome(outcome string) float64 {
	var m dto.Metric
	if err := metrics.AuthDecisionsTotal.WithLabelValues(outcome).Write(&m); err != nil {
		return -1
	}
	return m.GetCounter().GetValue()
}

func TestAuthenticate_TableTest(t *testing.T) {
	env := newTestEnv(t)

	secret, err := auth.NewSigningSecret("some-other-secret")
	require.NoError(t, err)
	foreignIssuer, err := auth.NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	foreignToken, err := foreignIssuer.Issue(42, auth.RoleSeller)
	require.NoError(t, err)

	expiredToken, err := env.issuer.IssueWithTTL(42, auth.RoleSeller, -time.Minute)
	require.NoError(t, err)

	valid := env.token(t, 42, auth.RoleSeller)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
		outcome    string
	}{
		{
			name:       "no header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Access denied. No token provided."}`,
			outcome:    metrics.OutcomeMissingCredential,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + valid,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid token format"}`,
			outcome:    metrics.OutcomeMalformedHeader,
		},
		{
			name:       "lowercase scheme",
			header:     "bearer " + valid,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid token format"}`,
			outcome:    metrics.OutcomeMalformedHeader,
		},
		{
			name:       "scheme without token",
			header:     "Bearer",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid token format"}`,
			outcome:    metrics.OutcomeMalformedHeader,
		},
		{
			name:       "scheme with empty token",
			header:     "Bearer ",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid token format"}`,
			outcome:    metrics.OutcomeMalformedHeader,
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-jwt",
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Invalid token"}`,
			outcome:    metrics.OutcomeInvalidCredential,
		},
		{
			name:       "token signed with another secret",
			header:     "Bearer " + foreignToken,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Invalid token"}`,
			outcome:    metrics.OutcomeInvalidCredential,
		},
		{
			name:       "expired token",
			header:     "Bearer " + expiredToken,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Invalid token"}`,
			outcome:    metrics.OutcomeInvalidCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			before := authOutcome(tt.outcome)
			rr := executeAuth(env.handler, tt.header, next)

			assert.False(t, called, "next handler must not run")
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, before+1, authOutcome(tt.outcome))
		})
	}
}

func TestAuthenticate_AttachesPrincipal(t *testing.T) {
	env := newTestEnv(t)

	var got auth.Principal
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	before := authOutcome(metrics.OutcomeAuthenticated)
	rr := executeAuth(env.handler, env.bearer(t, 42, auth.RoleSeller), next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, auth.RoleSeller, got.Role)
	assert.Equal(t, before+1, authOutcome(metrics.OutcomeAuthenticated))
}

func TestRequireRole(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		role       auth.Role
		required   auth.Requirement
		wantStatus int
	}{
		{"none lets a buyer through", auth.RoleBuyer, auth.RequireNone, http.StatusOK},
		{"none lets a seller through", auth.RoleSeller, auth.RequireNone, http.StatusOK},
		{"seller on seller route", auth.RoleSeller, auth.RequireSeller, http.StatusOK},
		{"buyer on buyer route", auth.RoleBuyer, auth.RequireBuyer, http.StatusOK},
		{"buyer on seller route", auth.RoleBuyer, auth.RequireSeller, http.StatusForbidden},
		{"seller on buyer route", auth.RoleSeller, auth.RequireBuyer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
			req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{UserID: 1, Role: tt.role}))
			rr := httptest.NewRecorder()

			env.handler.requireRole(tt.required)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
			if tt.wantStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"Access denied"}`, rr.Body.String())
			}
		})
	}
}

func TestRequireRole_WithoutGate(t *testing.T) {
	env := newTestEnv(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	rr := httptest.NewRecorder()
	env.handler.requireRole(auth.RequireNone)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifyCause(t *testing.T) {
	assert.Equal(t, "expired", verifyCause(auth.ErrTokenExpired))
	assert.Equal(t, "signature invalid", verifyCause(auth.ErrTokenSignatureInvalid))
	assert.Equal(t, "malformed", verifyCause(auth.ErrTokenMalformed))
	assert.Equal(t, "", verifyCause(auth.ErrMissingCredential))
}
