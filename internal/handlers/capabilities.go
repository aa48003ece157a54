package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/factism001/revogreen-ai-electrician/internal/models"
	"github.com/factism001/revogreen-ai-electrician/internal/prompts"
	"github.com/factism001/revogreen-ai-electrician/internal/ratelimit"
)

// Every capability endpoint applies the same ladder, in order: rate
// limit, then input validation, then credential check, then the model
// call. The limiter runs before the body is even decoded so abusive
// clients cannot waste quota or CPU.

func (h *Handler) ElectricalAdvice(w http.ResponseWriter, r *http.Request) {
	if res := h.checkLimit(r); !res.Allowed {
		writeJSON(w, http.StatusTooManyRequests, prompts.AdviceRateLimited(res.Message))
		return
	}

	var req models.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resp, status := h.flows.Advice(r.Context(), req)
	writeJSON(w, status, resp)
}

func (h *Handler) TroubleshootingAdvice(w http.ResponseWriter, r *http.Request) {
	if res := h.checkLimit(r); !res.Allowed {
		writeJSON(w, http.StatusTooManyRequests, prompts.TroubleshootingRateLimited(res.Message))
		return
	}

	var req models.TroubleshootingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resp, status := h.flows.Troubleshooting(r.Context(), req)
	writeJSON(w, status, resp)
}

func (h *Handler) AccessoryRecommendation(w http.ResponseWriter, r *http.Request) {
	if res := h.checkLimit(r); !res.Allowed {
		writeJSON(w, http.StatusTooManyRequests, prompts.AccessoryRateLimited(res.Message))
		return
	}

	var req models.AccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resp, status := h.flows.Accessories(r.Context(), req)
	writeJSON(w, status, resp)
}

func (h *Handler) EnergySavingsEstimate(w http.ResponseWriter, r *http.Request) {
	if res := h.checkLimit(r); !res.Allowed {
		writeJSON(w, http.StatusTooManyRequests, prompts.EnergyRateLimited(res.Message))
		return
	}

	var req models.EnergyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resp, status := h.flows.EnergyEstimate(r.Context(), req)
	writeJSON(w, status, resp)
}

func (h *Handler) ProjectPlan(w http.ResponseWriter, r *http.Request) {
	if res := h.checkLimit(r); !res.Allowed {
		writeJSON(w, http.StatusTooManyRequests, prompts.ProjectRateLimited(res.Message))
		return
	}

	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resp, status := h.flows.ProjectPlan(r.Context(), req)
	writeJSON(w, status, resp)
}

func (h *Handler) checkLimit(r *http.Request) ratelimit.Result {
	ip := clientIP(r)
	res := h.limiter.Check(ip)
	if !res.Allowed {
		h.logger.Info("rate limit exceeded",
			zap.String("ip", ip),
			zap.String("path", r.URL.Path))
	}
	return res
}
