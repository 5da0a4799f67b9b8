package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkstash/linkstash-go/internal/service"
)

// maxBodyBytes caps JSON request bodies at 1MB.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// decodeJSON decodes a size-limited JSON body into dst, writing the error
// response itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}

	return true
}

// isValidationError reports whether err is one of the per-field input rules.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrEmailRequired) ||
		errors.Is(err, service.ErrEmailInvalid) ||
		errors.Is(err, service.ErrPasswordRequired) ||
		errors.Is(err, service.ErrPasswordTooShort) ||
		errors.Is(err, service.ErrFirstNameRequired) ||
		errors.Is(err, service.ErrLastNameRequired) ||
		errors.Is(err, service.ErrLinkRequired) ||
		errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrNoFieldsToUpdate)
}
