// Package app is the composition root: it assembles the router, the
// middleware stack, and the API routes into a single handler. cmd/server
// serves the result; tests drive it directly without a listener.
package app

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dstudio-dev/dstudio-service/internal/config"
	"github.com/dstudio-dev/dstudio-service/internal/greeting"
	"github.com/dstudio-dev/dstudio-service/internal/health"
	"github.com/dstudio-dev/dstudio-service/internal/logging"
	appmiddleware "github.com/dstudio-dev/dstudio-service/internal/middleware"
	"github.com/dstudio-dev/dstudio-service/internal/respond"
)

const (
	apiTitle = "DStudio Service API"
	docsPath = "/api-docs"
)

// New builds the full HTTP handler for the service. Each call returns an
// independent instance, so tests never share router state.
func New(cfg config.Config, version string) http.Handler {
	message := cfg.Greeting
	if message == "" {
		message = greeting.DefaultMessage
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; only meaningful behind
		// a trusted reverse proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		logging.RequestLogger(),
		logging.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/", greeting.Root(message))

	apiCfg := huma.DefaultConfig(apiTitle, version)
	apiCfg.DocsPath = docsPath
	api := humachi.New(router, apiCfg)

	// Advertise CBOR alongside JSON in the OpenAPI document; the runtime
	// negotiation is handled by the huma CBOR format import.
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	health.Register(api)
	greeting.Register(api, message)

	return router
}
