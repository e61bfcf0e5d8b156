package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware with permissive defaults suitable for a service
// template. Tighten AllowedOrigins before exposing anything sensitive.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	})
}
