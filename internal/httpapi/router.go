package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swaggo/http-swagger"
	"github.com/vntrieu/greeter/internal/httpapi/handler"

	_ "github.com/vntrieu/greeter/docs" // swag-generated docs
)

// NewRouter builds the root HTTP router with basic middleware, the greeting
// and health routes, and the Swagger UI. Anything outside the declared routes
// falls through to chi's defaults (404 for unknown paths, 405 for wrong
// methods on a matched path).
//
// @title            Greeter API
// @version          1.0
// @description      Static greeting and health endpoints.
// @BasePath         /
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Read-only API fronted by a platform ingress; allow any origin for GET.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/", handler.Greeting)
	r.Get("/healthz", handler.Healthz)

	// Swagger UI and generated spec (from swag comments)
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	return r
}
