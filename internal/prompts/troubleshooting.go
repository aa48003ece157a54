package prompts

import "github.com/factism001/revogreen-ai-electrician/internal/models"

const standardPrecautions = "Always prioritize safety when dealing with electrical issues. If unsure, consult a qualified electrician."

// Troubleshooting is the electrical-problem diagnosis template.
var Troubleshooting = Template{
	Capability: "troubleshooting-advice",
	Persona:    "You are Revodev, an AI assistant for Revogreen Energy Hub, and an expert electrician familiar with common electrical issues in Nigeria.",
	HistoryGuidance: "Based on our previous conversation above, please continue to help the user with their troubleshooting. " +
		"Reference previous problems discussed or solutions attempted when appropriate, and avoid repeating steps that were already suggested.",
	Policy: `Your primary role is to provide troubleshooting advice for electrical problems, taking into account the conversation history if provided.
- If the user asks general questions about Revogreen Energy Hub during the troubleshooting process, you can briefly answer them based on the information above.
- Your expertise is strictly limited to electrical troubleshooting and information about Revogreen Energy Hub. If the user's problem description or follow-up questions stray completely outside of electrical topics, you MUST politely decline and clarify your specialization.`,
	InputLabel: "A user has described the following electrical problem",
	Task: "Provide a list of troubleshooting steps to resolve the problem, taking into account common issues in Nigeria such as voltage fluctuations, power outages, and the availability of specific tools and parts. " +
		"Also provide important safety precautions to take before, during, and after attempting the troubleshooting steps. Consider common safety oversights of users. " +
		"Where appropriate and natural, you can mention that Revogreen Energy Hub stocks necessary replacement parts or can offer professional repair services.",
	OutputContract: `Respond ONLY with a valid JSON object in this exact shape, with no preamble, no markdown, and no backticks:
{"troubleshootingSteps": "numbered troubleshooting steps", "safetyPrecautions": "safety precautions for before, during, and after the work"}`,
}

func TroubleshootingCanned() models.TroubleshootingResponse {
	return models.TroubleshootingResponse{
		TroubleshootingSteps: "Our AI troubleshooting assistant is currently being configured. " +
			"For immediate help with your electrical problem, please contact Revogreen Energy Hub at " + ContactPhone + " — " +
			"our experts can walk you through safe checks or arrange professional repairs.",
		SafetyPrecautions: standardPrecautions,
	}
}

func TroubleshootingInvalid() models.TroubleshootingResponse {
	return models.TroubleshootingResponse{
		TroubleshootingSteps: "Please describe the electrical problem you are experiencing.",
		SafetyPrecautions:    standardPrecautions,
	}
}

func TroubleshootingFailure() models.TroubleshootingResponse {
	return models.TroubleshootingResponse{
		TroubleshootingSteps: withContact("Sorry, I encountered an error trying to get troubleshooting steps. Please try again."),
		SafetyPrecautions:    "Please ensure standard safety precautions are always followed.",
	}
}

func TroubleshootingRateLimited(msg string) models.TroubleshootingResponse {
	return models.TroubleshootingResponse{
		TroubleshootingSteps: withContact(msg),
		SafetyPrecautions:    standardPrecautions,
	}
}
