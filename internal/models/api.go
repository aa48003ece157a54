package models

// APIError is the transport-level error payload. Capability-shaped
// fallbacks do not use it; it only covers malformed requests that never
// reach a flow.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
