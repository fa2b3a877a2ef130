package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// Cors allows the listed origins, or any origin when none are given.
func Cors(origins ...string) Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return len(origins) == 0 || slices.Contains(origins, origin)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}
	return cors.New(options).Handler
}
