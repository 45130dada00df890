package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// CorsMiddleware allows browser clients from origins. An empty list falls
// back to the local development frontends.
func CorsMiddleware(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
