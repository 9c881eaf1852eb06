package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/metrics"
)

// authenticate is the access gate. It passes the "Authorization" header to
// [auth.Gate.Authenticate] and, on success, hands the next handler a new
// request whose context carries the verified [auth.Principal].
//
// Rejections never reach the next handler:
//   - no header: 401 "Access denied. No token provided."
//   - not "Bearer <token>": 400 "Invalid token format"
//   - verification failure of any kind: 403 "Invalid token"
//
// The verifier's cause is logged but not returned to the client.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		principal, err := h.gate.Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			rejection := rejectionFromError(err)
			metrics.RecordAuthDecision(rejection.outcome)

			event := log.Warn().Err(err).Int("status", rejection.status)
			if cause := verifyCause(err); cause != "" {
				event = event.Str("cause", cause)
			}
			event.Msg("request rejected by access gate")

			writeMessage(w, r, rejection.message, rejection.status)
			return
		}

		metrics.RecordAuthDecision(metrics.OutcomeAuthenticated)
		log.Debug().
			Int64("user_id", principal.UserID).
			Str("role", principal.Role.String()).
			Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

// requireRole is the role policy of a route. It must be mounted behind
// authenticate. A principal whose role does not satisfy required gets
// 403 "Access denied".
func (h *Handler) requireRole(required auth.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			principal, ok := auth.PrincipalFromContext(r.Context())
			if !ok {
				log.Err(errNoPrincipal).Str("required", required.String()).Send()
				writeMessage(w, r, app.MsgNoTokenProvided, http.StatusUnauthorized)
				return
			}

			if err := auth.Authorize(principal, required); err != nil {
				metrics.RecordAuthDecision(metrics.OutcomeForbidden)
				log.Warn().Err(err).
					Int64("user_id", principal.UserID).
					Str("required", required.String()).
					Msg("request rejected by role policy")
				writeMessage(w, r, app.MsgAccessDenied, http.StatusForbidden)
				return
			}

			metrics.RecordAuthDecision(metrics.OutcomeAuthorized)
			next.ServeHTTP(w, r)
		})
	}
}

// principalFrom returns the principal attached by authenticate.
func principalFrom(r *http.Request) auth.Principal {
	p, _ := auth.PrincipalFromContext(r.Context())
	return p
}
