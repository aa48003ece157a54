package models

// Request/response pairs for the five AI capabilities. These are
// request-scoped value objects; nothing here is persisted.

type AdviceRequest struct {
	Question            string             `json:"question"`
	ImageDataURI        string             `json:"imageDataUri,omitempty"`
	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty"`
}

type AdviceResponse struct {
	Answer string `json:"answer"`
}

type TroubleshootingRequest struct {
	ProblemDescription  string             `json:"problemDescription"`
	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty"`
}

type TroubleshootingResponse struct {
	TroubleshootingSteps string `json:"troubleshootingSteps"`
	SafetyPrecautions    string `json:"safetyPrecautions"`
}

type AccessoryRequest struct {
	Needs               string             `json:"needs"`
	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty"`
}

type AccessoryResponse struct {
	Accessories   []string `json:"accessories"`
	Justification string   `json:"justification"`
}

type EnergyRequest struct {
	AppliancesDescription string `json:"appliancesDescription"`
}

type EnergySuggestion struct {
	ApplianceMatch string `json:"applianceMatch"`
	Suggestion     string `json:"suggestion"`
	Details        string `json:"details"`
}

type EnergyResponse struct {
	OverallAssessment string             `json:"overallAssessment"`
	Suggestions       []EnergySuggestion `json:"suggestions"`
	GeneralTips       []string           `json:"generalTips"`
}

type ProjectRequest struct {
	ProjectDescription string `json:"projectDescription"`
}

type ProjectResponse struct {
	ProjectName            string   `json:"projectName"`
	MaterialsNeeded        []string `json:"materialsNeeded"`
	ToolsTypicallyRequired []string `json:"toolsTypicallyRequired"`
	SafetyPrecautions      []string `json:"safetyPrecautions"`
	AdditionalAdvice       string   `json:"additionalAdvice"`
	IsComplexProject       bool     `json:"isComplexProject"`
}
