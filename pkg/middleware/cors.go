package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps h so that requests from any origin are allowed and preflight
// requests are answered before they reach the router.
func CORS(h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Length", "Location", HeaderRequestID},
	}).Handler(h)
}
