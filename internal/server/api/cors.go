package api

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// CORSPolicy is the static cross-origin policy applied to every route.
type CORSPolicy struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSPolicy allows the local dashboard dev servers.
func DefaultCORSPolicy() CORSPolicy {
	return CORSPolicy{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

// handler builds the middleware. A "*" origin is answered with a literal
// "*", which browsers refuse together with credentials, so credentials are
// turned off in that case.
func (p CORSPolicy) handler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   p.AllowedOrigins,
		AllowedMethods:   p.AllowedMethods,
		AllowedHeaders:   p.AllowedHeaders,
		AllowCredentials: p.AllowCredentials && !slices.Contains(p.AllowedOrigins, "*"),
		MaxAge:           p.MaxAge,
	})
}
