package models

// Conversation roles accepted in model-bound history. UI-only message
// kinds never carry one of these.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ConversationTurn is a single role-tagged entry in the history sent to
// the model. Insertion order is preserved; alternation is not enforced.
type ConversationTurn struct {
	Role  string        `json:"role"`
	Parts []ContentPart `json:"parts"`
}

// ContentPart is either text or an inline image. Both may coexist in
// one user turn (as separate parts).
type ContentPart struct {
	Text       string       `json:"text,omitempty"`
	InlineData *InlineImage `json:"inlineData,omitempty"`
}

// InlineImage carries an image decomposed from a data URI.
type InlineImage struct {
	MIMEType   string `json:"mimeType"`
	Base64Data string `json:"data"`
}

// UI transcript message kinds that must never reach the model.
const (
	UIKindLoading = "loading"
	UIKindError   = "error"
)

// UIMessage mirrors one entry of the chat client's transcript. Sender is
// "user" or "ai"; Kind is empty for genuine conversation turns.
type UIMessage struct {
	ID           string           `json:"id"`
	Sender       string           `json:"sender"`
	Kind         string           `json:"type,omitempty"`
	Text         string           `json:"content,omitempty"`
	Structured   *StructuredReply `json:"structured,omitempty"`
	ImageDataURI string           `json:"image,omitempty"`
}

// StructuredReply is the structured portion of an AI transcript entry.
// Exactly one capability's fields are expected to be populated.
type StructuredReply struct {
	Answer               string   `json:"answer,omitempty"`
	TroubleshootingSteps string   `json:"troubleshootingSteps,omitempty"`
	SafetyPrecautions    string   `json:"safetyPrecautions,omitempty"`
	Accessories          []string `json:"accessories,omitempty"`
	Justification        string   `json:"justification,omitempty"`
}
