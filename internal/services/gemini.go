package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/factism001/revogreen-ai-electrician/internal/models"
)

// ModelClient is the single outbound capability the flows need from a
// generative model: given a prompt and an optional image, return text,
// fallibly, with latency.
type ModelClient interface {
	Generate(ctx context.Context, prompt string, image *models.InlineImage) (string, error)
	Close() error
}

// GeminiClient implements ModelClient on the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	model.SetTopP(0.95)

	return &GeminiClient{client: client, model: model}, nil
}

// Generate performs a single model call. No streaming, no retries: one
// attempt per user action.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, image *models.InlineImage) (string, error) {
	parts := []genai.Part{genai.Text(prompt)}
	if image != nil {
		data, err := base64.StdEncoding.DecodeString(image.Base64Data)
		if err != nil {
			return "", fmt.Errorf("invalid image payload: %w", err)
		}
		parts = append(parts, genai.Blob{MIMEType: image.MIMEType, Data: data})
	}

	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty response")
	}

	return text, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
