package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/validators"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Debug().Err(err).Msg("email already in use")
			writeError(w, r, app.MsgEmailAlreadyInUse, http.StatusBadRequest)
		case errors.Is(err, service.ErrPasswordTooLong):
			log.Debug().Err(err).Msg("password too long")
			writeValidationError(w, r, validators.NewFieldError("password", app.MsgPasswordTooLong))
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Debug().Err(err).Msg("invalid data provided")
			writeValidationError(w, r, validators.NewFieldError("role", app.MsgInvalidRole))
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			writeError(w, r, app.MsgSignupFailed, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, models.SignupResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Err(err).Msg("no user was found/wrong password")
			writeError(w, r, app.MsgInvalidEmailOrPassword, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, r, app.MsgLoginFailed, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, models.LoginResponse{Token: token}, http.StatusOK)
}
