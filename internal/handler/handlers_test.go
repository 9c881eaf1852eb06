package handler

import (
	"testing"

	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) *auth.Gate {
	t.Helper()

	secret, err := auth.NewSigningSecret("handlers-test-secret")
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(secret)
	require.NoError(t, err)

	return auth.NewGate(verifier)
}

// TestNewHandlers_HTTP verifies that an HTTP address and a gate yield an
// initialised HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestGate(t), config.Server{HTTPAddress: ":3000"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that an empty address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestGate(t), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_NoGate verifies that guarded routes are never built
// without an access gate.
func TestNewHandlers_NoGate(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())

	require.ErrorIs(t, err, errNoAccessGate)
	assert.Nil(t, h)
}
