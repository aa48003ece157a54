package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/factism001/revogreen-ai-electrician/internal/models"
	"github.com/factism001/revogreen-ai-electrician/internal/prompts"
)

// mockClient counts calls and returns a scripted reply or error.
type mockClient struct {
	calls      int
	lastPrompt string
	lastImage  *models.InlineImage
	reply      string
	err        error
}

func (m *mockClient) Generate(_ context.Context, prompt string, image *models.InlineImage) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastImage = image
	return m.reply, m.err
}

func (m *mockClient) Close() error { return nil }

func TestAdvice_EmptyQuestionNeverCallsModel(t *testing.T) {
	mock := &mockClient{reply: `{"answer": "x"}`}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.Advice(context.Background(), models.AdviceRequest{Question: "  "})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please provide a valid question.", resp.Answer)
	assert.Equal(t, 0, mock.calls)
}

func TestAdvice_NoCredentialServesCanned(t *testing.T) {
	f := NewFlows(nil, zap.NewNop())

	resp, status := f.Advice(context.Background(), models.AdviceRequest{Question: "Why does my bulb flicker?"})

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp.Answer, prompts.ContactPhone)
}

func TestAdvice_SuccessParsesStructuredOutput(t *testing.T) {
	mock := &mockClient{reply: `{"answer": "Flickering usually means a loose neutral connection."}`}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.Advice(context.Background(), models.AdviceRequest{Question: "Why does my bulb flicker?"})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Flickering usually means a loose neutral connection.", resp.Answer)
	assert.Equal(t, 1, mock.calls)
	assert.Contains(t, mock.lastPrompt, "Why does my bulb flicker?")
}

func TestAdvice_ProviderErrorYieldsFallbackWithoutLeaking(t *testing.T) {
	mock := &mockClient{err: errors.New("rpc error: code = Unavailable desc = upstream exploded")}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.Advice(context.Background(), models.AdviceRequest{Question: "help"})

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp.Answer, prompts.ContactPhone)
	assert.NotContains(t, resp.Answer, "rpc error")
	assert.NotContains(t, resp.Answer, "exploded")
}

func TestAdvice_FreeTextSalvagedIntoAnswer(t *testing.T) {
	mock := &mockClient{reply: "Just tighten the terminal screws on the lampholder."}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.Advice(context.Background(), models.AdviceRequest{Question: "flickering bulb"})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Just tighten the terminal screws on the lampholder.", resp.Answer)
}

func TestAdvice_ImageForwardedToModel(t *testing.T) {
	mock := &mockClient{reply: `{"answer": "That is a burnt socket."}`}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.Advice(context.Background(), models.AdviceRequest{
		Question:     "what is wrong here?",
		ImageDataURI: "data:image/jpeg;base64,aGVsbG8=",
	})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "That is a burnt socket.", resp.Answer)
	require.NotNil(t, mock.lastImage)
	assert.Equal(t, "image/jpeg", mock.lastImage.MIMEType)
}

func TestAdvice_RejectsNonImageAttachment(t *testing.T) {
	mock := &mockClient{}
	f := NewFlows(mock, zap.NewNop())

	_, status := f.Advice(context.Background(), models.AdviceRequest{
		Question:     "q",
		ImageDataURI: "data:application/pdf;base64,aGVsbG8=",
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 0, mock.calls)
}

func TestAdvice_RejectsOversizedImage(t *testing.T) {
	mock := &mockClient{}
	f := NewFlows(mock, zap.NewNop())

	oversized := "data:image/png;base64," + strings.Repeat("A", 8<<20)
	_, status := f.Advice(context.Background(), models.AdviceRequest{Question: "q", ImageDataURI: oversized})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 0, mock.calls)
}

func TestAdvice_HistoryTrimmedToRecentTurns(t *testing.T) {
	mock := &mockClient{reply: `{"answer": "ok"}`}
	f := NewFlows(mock, zap.NewNop())

	turns := make([]models.ConversationTurn, 12)
	for i := range turns {
		turns[i] = models.ConversationTurn{
			Role:  models.RoleUser,
			Parts: []models.ContentPart{{Text: "turn-" + string(rune('a'+i))}},
		}
	}

	f.Advice(context.Background(), models.AdviceRequest{Question: "q", ConversationHistory: turns})

	assert.NotContains(t, mock.lastPrompt, "turn-a", "oldest turns are trimmed")
	assert.NotContains(t, mock.lastPrompt, "turn-d")
	assert.Contains(t, mock.lastPrompt, "turn-e", "last 8 turns are kept")
	assert.Contains(t, mock.lastPrompt, "turn-l")
}

func TestTroubleshooting_Ladder(t *testing.T) {
	t.Run("empty description is rejected before any call", func(t *testing.T) {
		mock := &mockClient{}
		f := NewFlows(mock, zap.NewNop())

		resp, status := f.Troubleshooting(context.Background(), models.TroubleshootingRequest{})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEmpty(t, resp.TroubleshootingSteps)
		assert.NotEmpty(t, resp.SafetyPrecautions)
		assert.Equal(t, 0, mock.calls)
	})

	t.Run("no credential serves canned", func(t *testing.T) {
		f := NewFlows(nil, zap.NewNop())

		resp, status := f.Troubleshooting(context.Background(), models.TroubleshootingRequest{ProblemDescription: "my fuse keeps blowing"})

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, resp.TroubleshootingSteps, prompts.ContactPhone)
	})

	t.Run("salvaged output always carries precautions", func(t *testing.T) {
		mock := &mockClient{reply: "First, check whether the fuse rating matches the load."}
		f := NewFlows(mock, zap.NewNop())

		resp, status := f.Troubleshooting(context.Background(), models.TroubleshootingRequest{ProblemDescription: "fuse blows"})

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "First, check whether the fuse rating matches the load.", resp.TroubleshootingSteps)
		assert.NotEmpty(t, resp.SafetyPrecautions)
	})

	t.Run("parsed output returned as-is", func(t *testing.T) {
		mock := &mockClient{reply: `{"troubleshootingSteps": "1. Isolate the circuit.", "safetyPrecautions": "Wear insulated gloves."}`}
		f := NewFlows(mock, zap.NewNop())

		resp, _ := f.Troubleshooting(context.Background(), models.TroubleshootingRequest{ProblemDescription: "fuse blows"})

		assert.Equal(t, "1. Isolate the circuit.", resp.TroubleshootingSteps)
		assert.Equal(t, "Wear insulated gloves.", resp.SafetyPrecautions)
	})
}

func TestAccessories_NoCredentialServesNonEmptyCannedList(t *testing.T) {
	f := NewFlows(nil, zap.NewNop())

	resp, status := f.Accessories(context.Background(), models.AccessoryRequest{Needs: "I need switches for my bedroom"})

	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, resp.Accessories)
	assert.Contains(t, resp.Justification, prompts.ContactPhone)
}

func TestAccessories_SalvageWrapsIntoJustification(t *testing.T) {
	mock := &mockClient{reply: "For a bedroom you want 13A SON-certified switches."}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.Accessories(context.Background(), models.AccessoryRequest{Needs: "bedroom switches"})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "For a bedroom you want 13A SON-certified switches.", resp.Justification)
	assert.NotNil(t, resp.Accessories)
	assert.Empty(t, resp.Accessories)
}

func TestEnergyEstimate_Success(t *testing.T) {
	mock := &mockClient{reply: `{"overallAssessment": "moderate", "suggestions": [{"applianceMatch": "5 old bulbs", "suggestion": "switch to LED", "details": "Revogreen stocks 9W LEDs"}], "generalTips": ["iron clothes in batches"]}`}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.EnergyEstimate(context.Background(), models.EnergyRequest{AppliancesDescription: "2 fans 10hrs/day, 5 old bulbs 6hrs/day"})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "moderate", resp.OverallAssessment)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "5 old bulbs", resp.Suggestions[0].ApplianceMatch)
}

func TestEnergyEstimate_ValidationAndErrorShapes(t *testing.T) {
	mock := &mockClient{err: errors.New("deadline exceeded")}
	f := NewFlows(mock, zap.NewNop())

	_, status := f.EnergyEstimate(context.Background(), models.EnergyRequest{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 0, mock.calls)

	resp, status := f.EnergyEstimate(context.Background(), models.EnergyRequest{AppliancesDescription: "1 fridge"})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp.OverallAssessment, prompts.ContactPhone)
	assert.NotContains(t, resp.OverallAssessment, "deadline")
	assert.NotNil(t, resp.Suggestions)
	assert.NotNil(t, resp.GeneralTips)
}

func TestProjectPlan_Success(t *testing.T) {
	mock := &mockClient{reply: `{"projectName": "Installing a Bedroom Socket", "materialsNeeded": ["13A SON-certified socket outlet"], "toolsTypicallyRequired": ["Screwdriver"], "safetyPrecautions": ["Turn off the main breaker"], "additionalAdvice": "Buy quality materials from Revogreen.", "isComplexProject": false}`}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.ProjectPlan(context.Background(), models.ProjectRequest{ProjectDescription: "install an extra socket in my bedroom"})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Installing a Bedroom Socket", resp.ProjectName)
	assert.False(t, resp.IsComplexProject)
	assert.NotEmpty(t, resp.MaterialsNeeded)
}

func TestProjectPlan_SalvageKeepsShape(t *testing.T) {
	mock := &mockClient{reply: "You will need a socket, some cable, and a screwdriver."}
	f := NewFlows(mock, zap.NewNop())

	resp, status := f.ProjectPlan(context.Background(), models.ProjectRequest{ProjectDescription: "extra socket"})

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp.AdditionalAdvice, "socket")
	assert.NotNil(t, resp.MaterialsNeeded)
	assert.NotNil(t, resp.ToolsTypicallyRequired)
	assert.NotNil(t, resp.SafetyPrecautions)
}

func TestNoCredential_NoCapabilityTouchesTheClient(t *testing.T) {
	// A nil client would panic if any flow tried to call it; reaching the
	// canned response proves the short-circuit.
	f := NewFlows(nil, zap.NewNop())
	ctx := context.Background()

	_, s1 := f.Advice(ctx, models.AdviceRequest{Question: "q"})
	_, s2 := f.Troubleshooting(ctx, models.TroubleshootingRequest{ProblemDescription: "p"})
	_, s3 := f.Accessories(ctx, models.AccessoryRequest{Needs: "n"})
	_, s4 := f.EnergyEstimate(ctx, models.EnergyRequest{AppliancesDescription: "a"})
	_, s5 := f.ProjectPlan(ctx, models.ProjectRequest{ProjectDescription: "d"})

	for i, s := range []int{s1, s2, s3, s4, s5} {
		assert.Equal(t, http.StatusOK, s, "capability %d should be degraded but available", i)
	}
}
