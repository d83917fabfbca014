package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/app"
)

// AuthGateway is the minimal interface needed by the signup and login
// endpoints.
type AuthGateway interface {
	Signup(ctx context.Context, in app.Credentials) (string, error)
	Login(ctx context.Context, in app.Credentials) (string, error)
}

// HandleSignup registers a user and returns its bearer token.
func HandleSignup(svc AuthGateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		token, err := svc.Signup(r.Context(), app.Credentials{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(tokenResponse{Token: token})
	}
}

// HandleLogin returns the bearer token for matching credentials.
func HandleLogin(svc AuthGateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		token, err := svc.Login(r.Context(), app.Credentials{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{Token: token})
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
