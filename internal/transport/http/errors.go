package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeCredentialsRequired  = "credentials_required"
	codeUsernameTaken        = "username_taken"
	codeInvalidCredentials   = "invalid_credentials"
	codeUnauthorized         = "unauthorized"
	codeNameRequired         = "name_required"
	codeForbidden            = "forbidden"
	codeCounterInvariant     = "counter_invariant"
	codeCapacityExceeded     = "capacity_exceeded"
	codeInvalidReturn        = "invalid_return"
	codeMissingDelta         = "missing_delta"
	codeInvalidDelta         = "invalid_delta"
	codeContention           = "contention"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps a domain sentinel to its HTTP classification.
// Anything unrecognized is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCredentialsRequired):
		writeError(w, http.StatusBadRequest, codeCredentialsRequired, err.Error())
	case errors.Is(err, domain.ErrNameRequired):
		writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
	case errors.Is(err, domain.ErrCounterInvariant):
		writeError(w, http.StatusBadRequest, codeCounterInvariant, err.Error())
	case errors.Is(err, domain.ErrCapacityExceeded):
		writeError(w, http.StatusBadRequest, codeCapacityExceeded, err.Error())
	case errors.Is(err, domain.ErrInvalidReturn):
		writeError(w, http.StatusBadRequest, codeInvalidReturn, err.Error())
	case errors.Is(err, domain.ErrMissingDelta):
		writeError(w, http.StatusBadRequest, codeMissingDelta, err.Error())
	case errors.Is(err, domain.ErrInvalidDelta):
		writeError(w, http.StatusBadRequest, codeInvalidDelta, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUsernameTaken):
		writeError(w, http.StatusForbidden, codeUsernameTaken, err.Error())
	case errors.Is(err, domain.ErrRestaurantForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusNotFound, codeInvalidCredentials, err.Error())
	case errors.Is(err, domain.ErrRestaurantNotFound), errors.Is(err, domain.ErrTicketNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrContention):
		writeError(w, http.StatusServiceUnavailable, codeContention, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
