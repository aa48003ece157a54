package handlers

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/factism001/revogreen-ai-electrician/internal/models"
	"github.com/factism001/revogreen-ai-electrician/internal/ratelimit"
	"github.com/factism001/revogreen-ai-electrician/internal/services"
)

// Handler serves the five AI capability endpoints. The limiter is an
// injected store so tests get isolated instances.
type Handler struct {
	limiter *ratelimit.Limiter
	flows   *services.Flows
	logger  *zap.Logger
}

func New(limiter *ratelimit.Limiter, flows *services.Flows, logger *zap.Logger) *Handler {
	return &Handler{
		limiter: limiter,
		flows:   flows,
		logger:  logger,
	}
}

// Liveness answers GET on a capability path with a smoke-test string.
func (h *Handler) Liveness(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "%s endpoint is live", name)
	}
}

// clientIP strips the port from RemoteAddr. The RealIP middleware has
// already resolved X-Forwarded-For / X-Real-IP upstream.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
