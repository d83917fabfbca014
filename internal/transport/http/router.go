package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig bundles the services the router depends on.
type RouterConfig struct {
	Auth        AuthGateway
	Authn       Authenticator
	Restaurants RestaurantManager
	Tickets     TicketManager
	Catalog     CatalogReader
	Purchases   TicketPurchaser
}

// NewRouter wires all endpoints. URLs are served with and without a
// trailing slash.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)

	r.Get("/health", HealthHandler)

	r.Post("/signup", HandleSignup(cfg.Auth))
	r.Post("/login", HandleLogin(cfg.Auth))

	r.Get("/tickets", HandleListPublicTickets(cfg.Catalog))
	r.Get("/tickets/{ticketID}", HandleGetPublicTicket(cfg.Catalog))
	r.Patch("/tickets/{ticketID}/buy", HandleBuyTicket(cfg.Purchases))

	r.Route("/restaurants", func(r chi.Router) {
		r.Use(RequireAuth(cfg.Authn))

		r.Get("/", HandleListRestaurants(cfg.Restaurants))
		r.Post("/", HandleCreateRestaurant(cfg.Restaurants))
		r.Get("/{restaurantID}", HandleGetRestaurant(cfg.Restaurants))
		r.Put("/{restaurantID}", HandleUpdateRestaurant(cfg.Restaurants))
		r.Delete("/{restaurantID}", HandleDeleteRestaurant(cfg.Restaurants))

		r.Route("/{restaurantID}/tickets", func(r chi.Router) {
			r.Get("/", HandleListTickets(cfg.Tickets))
			r.Post("/", HandleCreateTicket(cfg.Tickets))
			r.Get("/{ticketID}", HandleGetTicket(cfg.Tickets))
			r.Put("/{ticketID}", HandleUpdateTicket(cfg.Tickets))
			r.Delete("/{ticketID}", HandleDeleteTicket(cfg.Tickets))
		})
	})

	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	return r
}
