package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/mock"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "http-handler-test-secret"

// testEnv is a fully routed Handler whose services are gomock mocks and
// whose access gate uses a real verifier.
type testEnv struct {
	handler *Handler
	router  http.Handler
	issuer  *auth.Issuer

	authService    *mock.MockAuthService
	productService *mock.MockProductService
	cartService    *mock.MockCartService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	secret, err := auth.NewSigningSecret(testSecret)
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(secret)
	require.NoError(t, err)
	issuer, err := auth.NewIssuer(secret, time.Hour)
	require.NoError(t, err)

	env := &testEnv{
		issuer:         issuer,
		authService:    mock.NewMockAuthService(ctrl),
		productService: mock.NewMockProductService(ctrl),
		cartService:    mock.NewMockCartService(ctrl),
	}

	services := &service.Services{
		AuthService:    env.authService,
		ProductService: env.productService,
		CartService:    env.cartService,
	}

	env.handler = NewHandler(services, auth.NewGate(verifier), config.Server{HTTPAddress: ":0"}, logger.Nop())
	env.router = env.handler.Init()

	return env
}

func (e *testEnv) token(t *testing.T, userID int64, role auth.Role) string {
	t.Helper()
	token, err := e.issuer.Issue(userID, role)
	require.NoError(t, err)
	return token
}

func (e *testEnv) bearer(t *testing.T, userID int64, role auth.Role) string {
	return "Bearer " + e.token(t, userID, role)
}

// do sends a request through the router. An empty authorization leaves the
// header out.
func (e *testEnv) do(method, path, body, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
