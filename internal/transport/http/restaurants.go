package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/app"
	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

// RestaurantManager is the minimal interface needed by the owner-scoped
// restaurant endpoints.
type RestaurantManager interface {
	Create(ctx context.Context, in app.CreateRestaurantInput) (domain.Restaurant, error)
	List(ctx context.Context, ownerID string) ([]domain.Restaurant, error)
	Get(ctx context.Context, ownerID, restaurantID string) (domain.Restaurant, error)
	Update(ctx context.Context, in app.UpdateRestaurantInput) (domain.Restaurant, error)
	Delete(ctx context.Context, ownerID, restaurantID string) error
}

func HandleListRestaurants(svc RestaurantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		restaurants, err := svc.List(r.Context(), user.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := make([]restaurantResponse, 0, len(restaurants))
		for _, rest := range restaurants {
			resp = append(resp, newRestaurantResponse(rest))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func HandleCreateRestaurant(svc RestaurantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		var req restaurantRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		restaurant, err := svc.Create(r.Context(), app.CreateRestaurantInput{
			OwnerID: user.ID,
			Name:    req.Name,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newRestaurantResponse(restaurant))
	}
}

func HandleGetRestaurant(svc RestaurantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		restaurant, err := svc.Get(r.Context(), user.ID, chi.URLParam(r, "restaurantID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newRestaurantResponse(restaurant))
	}
}

func HandleUpdateRestaurant(svc RestaurantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		var req restaurantRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		restaurant, err := svc.Update(r.Context(), app.UpdateRestaurantInput{
			OwnerID:      user.ID,
			RestaurantID: chi.URLParam(r, "restaurantID"),
			Name:         req.Name,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newRestaurantResponse(restaurant))
	}
}

func HandleDeleteRestaurant(svc RestaurantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		if err := svc.Delete(r.Context(), user.ID, chi.URLParam(r, "restaurantID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type restaurantRequest struct {
	Name string `json:"name"`
}

type restaurantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newRestaurantResponse(r domain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:   r.ID,
		Name: r.Name,
	}
}
