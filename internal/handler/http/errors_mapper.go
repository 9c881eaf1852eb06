package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/metrics"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusMap is checked in order; the first matching target wins.
var errorStatusMap = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrPasswordTooLong, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrNothingToUpdate, http.StatusBadRequest},
	{validators.ErrUnsupportedType, http.StatusInternalServerError},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrProductNotFound, http.StatusNotFound},
	{store.ErrCartItemNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusBadRequest
	}

	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// gateRejection describes how a failed authentication is reported.
type gateRejection struct {
	status  int
	message string
	outcome string
}

var gateRejections = []struct {
	target error
	gateRejection
}{
	{auth.ErrMissingCredential, gateRejection{http.StatusUnauthorized, app.MsgNoTokenProvided, metrics.OutcomeMissingCredential}},
	{auth.ErrMalformedHeader, gateRejection{http.StatusBadRequest, app.MsgInvalidTokenFormat, metrics.OutcomeMalformedHeader}},
	{auth.ErrInvalidCredential, gateRejection{http.StatusForbidden, app.MsgInvalidToken, metrics.OutcomeInvalidCredential}},
}

// rejectionFromError maps a gate error to its response. Unknown errors are
// reported as an invalid credential.
func rejectionFromError(err error) gateRejection {
	for _, r := range gateRejections {
		if errors.Is(err, r.target) {
			return r.gateRejection
		}
	}
	return gateRejections[len(gateRejections)-1].gateRejection
}

// verifyCause names the verifier failure behind an invalid credential for
// logs. It never reaches the response body.
func verifyCause(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrTokenSignatureInvalid):
		return "signature invalid"
	case errors.Is(err, auth.ErrTokenMalformed):
		return "malformed"
	default:
		return ""
	}
}
