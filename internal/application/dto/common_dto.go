// Package dto contains the request and response shapes of the HTTP API.
package dto

// APIResponse is the envelope used by quote and error responses.
// Finalize keeps its own flat PurchaseResult body.
type APIResponse[T any] struct {
	Success bool          `json:"success"`
	Data    T             `json:"data,omitempty"`
	Error   *APIError     `json:"error,omitempty"`
	Meta    *ResponseMeta `json:"meta,omitempty"`
}

// APIError carries a machine-readable code next to the message a client may show.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResponseMeta ties a response to its request for support and tracing.
type ResponseMeta struct {
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Version   string `json:"version,omitempty"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}

// NewErrorResponse builds a failed envelope.
//
// Parameters:
//   - code: one of the handler or middleware error codes
//   - message: the message shown to the client
//
// Returns:
//   - APIResponse[T]: envelope with Success false and Error set
func NewErrorResponse[T any](code, message string) APIResponse[T] {
	return APIResponse[T]{Error: &APIError{Code: code, Message: message}}
}

// WithMeta attaches response metadata.
func (r APIResponse[T]) WithMeta(meta ResponseMeta) APIResponse[T] {
	r.Meta = &meta
	return r
}

// Probe and dependency states reported by the health endpoints.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
	StatusUp       = "up"
	StatusDown     = "down"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	// Checks is only filled by readiness, keyed by dependency name.
	Checks map[string]DependencyStatus `json:"checks,omitempty"`
}

// DependencyStatus is the result of pinging one dependency.
type DependencyStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}
