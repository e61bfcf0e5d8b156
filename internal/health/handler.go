package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/dstudio-dev/dstudio-service/internal/logging"
)

// Data models the success payload for the health route.
type Data struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Data
}

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*Output, error) {
		logging.LogInfo(ctx, "health check", zap.String("path", "/health"))
		return &Output{Body: Data{Message: "healthy"}}, nil
	})
}
