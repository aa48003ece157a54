package prompts

import "github.com/factism001/revogreen-ai-electrician/internal/models"

// Accessory is the product recommendation template.
var Accessory = Template{
	Capability: "accessory-recommendation",
	Persona:    "You are Revodev, an AI assistant for Revogreen Energy Hub, and an expert in electrical accessories available in the Nigerian market.",
	HistoryGuidance: "Based on our previous conversation above, please continue to help the user with their accessory needs. " +
		"Reference accessories already discussed when appropriate and do not repeat recommendations the user has already received.",
	Policy: `Your primary role is to recommend electrical accessories based on the user's described needs, taking into account the conversation history if provided.
- Recommend only accessories realistically available in the Nigerian market, preferring SON-certified products.
- Your expertise is strictly limited to electrical accessories and information about Revogreen Energy Hub. If the user's needs are completely outside these domains, you MUST politely decline and clarify your specialization.`,
	InputLabel: "The user has described the following electrical needs",
	Task: "Recommend a list of suitable electrical accessories and justify the selection. " +
		"The justification should also mention that Revogreen Energy Hub stocks such items and how the user can inquire further.",
	OutputContract: `Respond ONLY with a valid JSON object in this exact shape, with no preamble, no markdown, and no backticks:
{"accessories": ["recommended accessory 1", "recommended accessory 2"], "justification": "why these accessories fit the described needs"}`,
}

func AccessoryCanned() models.AccessoryResponse {
	return models.AccessoryResponse{
		Accessories: []string{
			"SON-certified switches and sockets",
			"Quality copper wires (various gauges)",
			"Energy-saving LED bulbs",
			"Distribution boards and breakers",
			"Cable protection accessories",
		},
		Justification: "Our AI recommendation system is being configured. " +
			"For personalized electrical accessory recommendations based on your specific needs, please contact Revogreen Energy Hub at " + ContactPhone + ". " +
			"We stock a complete range of SON-certified electrical accessories in Ibadan and ship nationwide. " +
			"Our experts will help you choose the right products for your project!",
	}
}

func AccessoryInvalid() models.AccessoryResponse {
	return models.AccessoryResponse{
		Accessories:   []string{},
		Justification: "Please describe your electrical accessory needs.",
	}
}

func AccessoryFailure() models.AccessoryResponse {
	return models.AccessoryResponse{
		Accessories:   []string{},
		Justification: withContact("Sorry, I could not fetch recommendations at this time. Please try again."),
	}
}

func AccessoryRateLimited(msg string) models.AccessoryResponse {
	return models.AccessoryResponse{
		Accessories:   []string{},
		Justification: withContact(msg),
	}
}
