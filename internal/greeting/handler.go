// Package greeting serves the canonical DStudio greeting, both as the
// plain-text root route and as a typed v1 API.
package greeting

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/dstudio-dev/dstudio-service/internal/logging"
)

// DefaultMessage is the greeting served on the root route. Keep in sync with
// the other DStudio scaffolds, which serve the same message.
const DefaultMessage = "Hello from DStudio Python Implementation!"

// Root returns the plain-text handler for GET /. The body is exactly the
// given message, with no trailing newline.
func Root(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logging.LogInfo(r.Context(), "greeting served", zap.String("path", "/"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, message)
	}
}

// Register wires greeting routes into the provided API router.
func Register(api huma.API, message string) {
	huma.Get(api, "/v1/greeting", func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		logging.LogInfo(ctx, "greeting get", zap.String("path", "/v1/greeting"))
		return &GetOutput{Body: Data{Message: message}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-greeting",
		Method:        http.MethodPost,
		Path:          "/v1/greeting",
		Summary:       "Create a personalized greeting",
		DefaultStatus: http.StatusCreated,
	}, createHandler)
}

func createHandler(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	logging.LogInfo(ctx, "greeting post", zap.String("path", "/v1/greeting"), zap.String("name", input.Body.Name))
	message := fmt.Sprintf("Hello, %s!", input.Body.Name)
	return &CreateOutput{Body: Data{Message: message}}, nil
}
