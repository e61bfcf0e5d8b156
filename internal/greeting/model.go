package greeting

// Data models the response payload for greeting endpoints.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from DStudio Python Implementation!"`
}

// GetOutput is the response wrapper for the GET greeting endpoint.
type GetOutput struct {
	Body Data
}

// CreateOutput is the response wrapper for the POST greeting endpoint.
type CreateOutput struct {
	Body Data
}
