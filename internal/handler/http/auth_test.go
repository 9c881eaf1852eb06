package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ── signup ───────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	env := newTestEnv(t)

	env.authService.EXPECT().
		Signup(gomock.Any(), models.SignupRequest{Username: "sam", Email: "sam@x.io", Password: "secret1", Role: "seller"}).
		Return(models.User{UserID: 42, Username: "sam", Email: "sam@x.io", Role: "seller", PasswordHash: "hash"}, nil)

	rr := env.do(http.MethodPost, "/auth/signup",
		`{"username":"sam","email":"sam@x.io","password":"secret1","role":"seller"}`, "")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":42,"username":"sam","role":"seller"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "missing username",
			body:     `{"email":"sam@x.io","password":"secret1","role":"buyer"}`,
			wantBody: `{"errors":[{"field":"username","message":"Username is required"}]}`,
		},
		{
			name:     "bad email",
			body:     `{"username":"sam","email":"sam","password":"secret1","role":"buyer"}`,
			wantBody: `{"errors":[{"field":"email","message":"Invalid email address"}]}`,
		},
		{
			name:     "short password",
			body:     `{"username":"sam","email":"sam@x.io","password":"12345","role":"buyer"}`,
			wantBody: `{"errors":[{"field":"password","message":"Password must be at least 6 characters long"}]}`,
		},
		{
			name:     "unknown role",
			body:     `{"username":"sam","email":"sam@x.io","password":"secret1","role":"admin"}`,
			wantBody: `{"errors":[{"field":"role","message":"Role must be buyer or seller"}]}`,
		},
		{
			name:     "not JSON",
			body:     `username=sam`,
			wantBody: `{"errors":[{"field":"body","message":"Invalid JSON body"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rr := env.do(http.MethodPost, "/auth/signup", tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestSignup_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "email taken",
			err:        fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email already in use"}`,
		},
		{
			name:       "password too long for bcrypt",
			err:        service.ErrPasswordTooLong,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"field":"password","message":"Password must be at most 72 bytes long"}]}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Signup failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authService.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rr := env.do(http.MethodPost, "/auth/signup",
				`{"username":"sam","email":"sam@x.io","password":"secret1","role":"buyer"}`, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	env.authService.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "sam@x.io", Password: "secret1"}).
		Return("signed.token", nil)

	rr := env.do(http.MethodPost, "/auth/login", `{"email":"sam@x.io","password":"secret1"}`, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"signed.token"}`, rr.Body.String())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing password",
			body:       `{"email":"sam@x.io"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"field":"password","message":"Password is required"}]}`,
		},
		{
			name:       "bad email",
			body:       `{"email":"nope","password":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"field":"email","message":"Invalid email address"}]}`,
		},
		{
			name:       "wrong credentials",
			body:       `{"email":"sam@x.io","password":"wrong"}`,
			serviceErr: service.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid email or password"}`,
		},
		{
			name:       "unexpected",
			body:       `{"email":"sam@x.io","password":"secret1"}`,
			serviceErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Login failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.serviceErr != nil {
				env.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", tt.serviceErr)
			}

			rr := env.do(http.MethodPost, "/auth/login", tt.body, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
