// Package history converts UI-level chat transcripts into the bounded,
// model-ready history that flows attach to their prompts.
package history

import (
	"strings"

	"github.com/factism001/revogreen-ai-electrician/internal/models"
)

// DefaultMaxTurns is how many trailing turns flows send to the model.
const DefaultMaxTurns = 8

// FromUIMessages maps a chat transcript to model history. Loading
// placeholders, error messages, and mode-introduction banners are
// dropped; they must never reach the model.
func FromUIMessages(messages []models.UIMessage) []models.ConversationTurn {
	turns := []models.ConversationTurn{}

	for _, msg := range messages {
		if msg.Kind == models.UIKindLoading || msg.Kind == models.UIKindError {
			continue
		}
		if strings.Contains(msg.ID, "-intro-") {
			continue
		}

		switch msg.Sender {
		case "user":
			parts := []models.ContentPart{}
			if msg.Text != "" {
				parts = append(parts, models.ContentPart{Text: msg.Text})
			}
			if img := DecodeDataURI(msg.ImageDataURI); img != nil {
				parts = append(parts, models.ContentPart{InlineData: img})
			}
			if len(parts) == 0 {
				continue
			}
			turns = append(turns, models.ConversationTurn{Role: models.RoleUser, Parts: parts})

		case "ai":
			text := replyText(msg)
			if text == "" {
				continue
			}
			turns = append(turns, models.ConversationTurn{
				Role:  models.RoleModel,
				Parts: []models.ContentPart{{Text: text}},
			})
		}
	}

	return turns
}

// replyText flattens an AI transcript entry into one text blob,
// whichever capability produced it.
func replyText(msg models.UIMessage) string {
	if msg.Text != "" {
		return msg.Text
	}
	s := msg.Structured
	if s == nil {
		return ""
	}

	switch {
	case s.Answer != "":
		return s.Answer
	case s.TroubleshootingSteps != "":
		precautions := s.SafetyPrecautions
		if precautions == "" {
			precautions = "Follow standard safety guidelines."
		}
		return s.TroubleshootingSteps + "\n\nSafety Precautions: " + precautions
	case len(s.Accessories) > 0 || s.Justification != "":
		return "Recommended accessories: " + strings.Join(s.Accessories, ", ") + "\n\n" + s.Justification
	}
	return ""
}

// Trim returns the most recent max turns, preserving order. A history
// already within the limit comes back unchanged.
func Trim(turns []models.ConversationTurn, max int) []models.ConversationTurn {
	if max <= 0 {
		return []models.ConversationTurn{}
	}
	if len(turns) <= max {
		return turns
	}
	return turns[len(turns)-max:]
}

// DecodeDataURI splits a "data:<mimetype>;base64,<data>" URI into its
// MIME type and payload. Anything malformed yields nil.
func DecodeDataURI(uri string) *models.InlineImage {
	if uri == "" {
		return nil
	}
	meta, data, ok := strings.Cut(uri, ",")
	if !ok || data == "" {
		return nil
	}
	meta = strings.TrimPrefix(meta, "data:")
	mimeType, _, _ := strings.Cut(meta, ";")
	if mimeType == "" {
		return nil
	}
	return &models.InlineImage{MIMEType: mimeType, Base64Data: data}
}
