package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/factism001/revogreen-ai-electrician/internal/history"
	"github.com/factism001/revogreen-ai-electrician/internal/models"
	"github.com/factism001/revogreen-ai-electrician/internal/prompts"
)

// maxImageBytes caps decoded inline image payloads at 5MB.
const maxImageBytes = 5 << 20

// Flows runs the render-prompt/call-model/parse-output pipeline for
// every capability. Each method resolves to a well-formed response plus
// an HTTP status, never a Go error: provider failures are logged here
// in full and surfaced as capability-shaped fallbacks.
type Flows struct {
	client   ModelClient
	logger   *zap.Logger
	maxTurns int
}

// NewFlows builds the capability executors. A nil client puts every
// capability into degraded canned-response mode; that state is logged
// once here, not per request.
func NewFlows(client ModelClient, logger *zap.Logger) *Flows {
	if client == nil {
		logger.Warn("no model credential configured, all capabilities will serve canned responses")
	}
	return &Flows{
		client:   client,
		logger:   logger,
		maxTurns: history.DefaultMaxTurns,
	}
}

func (f *Flows) Advice(ctx context.Context, req models.AdviceRequest) (models.AdviceResponse, int) {
	if strings.TrimSpace(req.Question) == "" {
		return prompts.AdviceInvalid(), http.StatusBadRequest
	}

	img, err := validateImage(req.ImageDataURI)
	if err != nil {
		f.logger.Debug("rejected image attachment", zap.Error(err))
		return models.AdviceResponse{
			Answer: "Please attach a valid image (image files only, under 5MB), or remove the attachment and ask again.",
		}, http.StatusBadRequest
	}

	if f.client == nil {
		return prompts.AdviceCanned(), http.StatusOK
	}

	prompt := prompts.Advice.Render(req.Question, history.Trim(req.ConversationHistory, f.maxTurns))
	raw, err := f.client.Generate(ctx, prompt, img)
	if err != nil {
		f.logger.Error("electrical advice generation failed", zap.Error(err))
		return prompts.AdviceFailure(), http.StatusOK
	}

	res := parseModelJSON[models.AdviceResponse](raw)
	if res.Salvaged || strings.TrimSpace(res.Output.Answer) == "" {
		f.logger.Debug("salvaging free-text advice output")
		return models.AdviceResponse{Answer: strings.TrimSpace(raw)}, http.StatusOK
	}
	return res.Output, http.StatusOK
}

func (f *Flows) Troubleshooting(ctx context.Context, req models.TroubleshootingRequest) (models.TroubleshootingResponse, int) {
	if strings.TrimSpace(req.ProblemDescription) == "" {
		return prompts.TroubleshootingInvalid(), http.StatusBadRequest
	}

	if f.client == nil {
		return prompts.TroubleshootingCanned(), http.StatusOK
	}

	prompt := prompts.Troubleshooting.Render(req.ProblemDescription, history.Trim(req.ConversationHistory, f.maxTurns))
	raw, err := f.client.Generate(ctx, prompt, nil)
	if err != nil {
		f.logger.Error("troubleshooting advice generation failed", zap.Error(err))
		return prompts.TroubleshootingFailure(), http.StatusOK
	}

	res := parseModelJSON[models.TroubleshootingResponse](raw)
	out := res.Output
	if res.Salvaged || strings.TrimSpace(out.TroubleshootingSteps) == "" {
		f.logger.Debug("salvaging free-text troubleshooting output")
		out = models.TroubleshootingResponse{TroubleshootingSteps: strings.TrimSpace(raw)}
	}
	if out.SafetyPrecautions == "" {
		out.SafetyPrecautions = "Always prioritize safety when working with electricity. Turn off power at the main breaker before any work, and consult a qualified electrician if unsure."
	}
	return out, http.StatusOK
}

func (f *Flows) Accessories(ctx context.Context, req models.AccessoryRequest) (models.AccessoryResponse, int) {
	if strings.TrimSpace(req.Needs) == "" {
		return prompts.AccessoryInvalid(), http.StatusBadRequest
	}

	if f.client == nil {
		return prompts.AccessoryCanned(), http.StatusOK
	}

	prompt := prompts.Accessory.Render(req.Needs, history.Trim(req.ConversationHistory, f.maxTurns))
	raw, err := f.client.Generate(ctx, prompt, nil)
	if err != nil {
		f.logger.Error("accessory recommendation generation failed", zap.Error(err))
		return prompts.AccessoryFailure(), http.StatusOK
	}

	res := parseModelJSON[models.AccessoryResponse](raw)
	out := res.Output
	if res.Salvaged || (len(out.Accessories) == 0 && strings.TrimSpace(out.Justification) == "") {
		f.logger.Debug("salvaging free-text accessory output")
		out = models.AccessoryResponse{Justification: strings.TrimSpace(raw)}
	}
	if out.Accessories == nil {
		out.Accessories = []string{}
	}
	return out, http.StatusOK
}

func (f *Flows) EnergyEstimate(ctx context.Context, req models.EnergyRequest) (models.EnergyResponse, int) {
	if strings.TrimSpace(req.AppliancesDescription) == "" {
		return prompts.EnergyInvalid(), http.StatusBadRequest
	}

	if f.client == nil {
		return prompts.EnergyCanned(), http.StatusOK
	}

	prompt := prompts.Energy.Render(req.AppliancesDescription, nil)
	raw, err := f.client.Generate(ctx, prompt, nil)
	if err != nil {
		f.logger.Error("energy estimate generation failed", zap.Error(err))
		return prompts.EnergyFailure(), http.StatusOK
	}

	res := parseModelJSON[models.EnergyResponse](raw)
	out := res.Output
	if res.Salvaged || strings.TrimSpace(out.OverallAssessment) == "" {
		f.logger.Debug("salvaging free-text energy estimate output")
		out = models.EnergyResponse{OverallAssessment: strings.TrimSpace(raw)}
	}
	if out.Suggestions == nil {
		out.Suggestions = []models.EnergySuggestion{}
	}
	if out.GeneralTips == nil {
		out.GeneralTips = []string{}
	}
	return out, http.StatusOK
}

func (f *Flows) ProjectPlan(ctx context.Context, req models.ProjectRequest) (models.ProjectResponse, int) {
	if strings.TrimSpace(req.ProjectDescription) == "" {
		return prompts.ProjectInvalid(), http.StatusBadRequest
	}

	if f.client == nil {
		return prompts.ProjectCanned(), http.StatusOK
	}

	prompt := prompts.Project.Render(req.ProjectDescription, nil)
	raw, err := f.client.Generate(ctx, prompt, nil)
	if err != nil {
		f.logger.Error("project plan generation failed", zap.Error(err))
		return prompts.ProjectFailure(), http.StatusOK
	}

	res := parseModelJSON[models.ProjectResponse](raw)
	out := res.Output
	if res.Salvaged || strings.TrimSpace(out.ProjectName) == "" {
		f.logger.Debug("salvaging free-text project plan output")
		out = models.ProjectResponse{
			ProjectName:      "Your Electrical Project",
			AdditionalAdvice: strings.TrimSpace(raw),
		}
	}
	if out.MaterialsNeeded == nil {
		out.MaterialsNeeded = []string{}
	}
	if out.ToolsTypicallyRequired == nil {
		out.ToolsTypicallyRequired = []string{}
	}
	if out.SafetyPrecautions == nil {
		out.SafetyPrecautions = []string{}
	}
	return out, http.StatusOK
}

// validateImage parses and checks an optional image data URI before any
// model call. MIME type must be image/* and the decoded payload must be
// at most 5MB.
func validateImage(dataURI string) (*models.InlineImage, error) {
	if dataURI == "" {
		return nil, nil
	}

	img := history.DecodeDataURI(dataURI)
	if img == nil {
		return nil, errors.New("malformed image data URI")
	}
	if !strings.HasPrefix(img.MIMEType, "image/") {
		return nil, fmt.Errorf("unsupported attachment type %q", img.MIMEType)
	}
	if base64.StdEncoding.DecodedLen(len(img.Base64Data)) > maxImageBytes {
		return nil, errors.New("image exceeds the 5MB limit")
	}
	return img, nil
}
