package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/preston-bernstein/nfl-games-service/internal/http/handlers"
)

// RouterConfig carries the cross-origin policy for the public routes.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter registers HTTP routes and wraps them with CORS handling.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet, nethttp.MethodHead)
	r.HandleFunc("/games/today", handler.GamesToday).Methods(nethttp.MethodGet, nethttp.MethodHead)
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodHead, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(r)
}
