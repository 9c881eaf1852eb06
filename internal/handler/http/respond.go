package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/internal/validators"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies read by decodeAndValidate.
const maxBodyBytes = 1 << 20

func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeJSON(w, r, models.MessageResponse{Message: message}, status)
}

func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeJSON(w, r, models.ErrorResponse{Error: message}, status)
}

func writeValidationError(w http.ResponseWriter, r *http.Request, vErr *validators.ValidationError) {
	writeJSON(w, r, models.ValidationErrorResponse{Errors: vErr.Fields}, http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// the 400 response has already been written and false is returned.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeValidationError(w, r, validators.DecodeError(dst, err))
		return false
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		if vErr, ok := validators.AsValidationError(err); ok {
			log.Debug().Err(err).Msg("request validation failed")
			writeValidationError(w, r, vErr)
			return false
		}

		log.Err(err).Msg("request could not be validated")
		writeError(w, r, app.MsgInternalServerError, http.StatusInternalServerError)
		return false
	}

	return true
}

// pathID parses the {id} URL parameter as a positive integer. On failure
// the 400 response has already been written and false is returned.
func pathID(w http.ResponseWriter, r *http.Request, message string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeValidationError(w, r, validators.NewFieldError("id", message))
		return 0, false
	}
	return id, true
}
