package prompts

import "github.com/factism001/revogreen-ai-electrician/internal/models"

// Project is the small-project planning template. It accepts no
// conversation history.
var Project = Template{
	Capability: "project-planner",
	Persona: "You are Revodev, an AI assistant for Revogreen Energy Hub, and an expert electrician specializing in Nigerian electrical installations and safety. " +
		"Your goal is to help users plan small, common household electrical projects by listing materials, tools, and safety tips.",
	Policy: `Your planning assistance is limited to small household electrical projects. If the user describes a project that is not electrical in nature (e.g., "planning a birthday party"), you MUST politely decline and clarify your specialization. For example: "I can help plan small electrical projects. What electrical task are you thinking of?"`,
	InputLabel: "User's Project Description",
	Task: `Instructions:
1. Determine a suitable project name based on the user's description.
2. List the materials needed. Be specific to common Nigerian electrical standards (e.g., "13A SON-certified socket outlet", "2.5mm² copper twin and earth cable"). Mention that Revogreen stocks these.
3. List the tools typically required for such a project.
4. Provide crucial safety precautions. ALWAYS emphasize turning off the main power supply. For simpler tasks, still mention that if the user is unsure at any point, they should consult a professional.
5. Offer additional advice. This can include tips on quality, or a reminder that Revogreen Energy Hub provides quality materials and professional help.
6. Mark the project as complex if it is beyond typical simple DIY (like changing a switch or socket) and should be handled by a professional. Examples: anything involving main distribution boards, extensive rewiring, or projects requiring specialized knowledge beyond basic component replacement.

Example for a simple task like "replacing a light switch":
- projectName: "Replacing a Light Switch"
- materialsNeeded: ["SON-certified light switch (matching amperage)", "Insulation tape"]
- toolsTypicallyRequired: ["Screwdriver (flathead and Phillips)", "Voltage tester", "Pliers/wire stripper"]
- safetyPrecautions: ["ALWAYS turn off power at the main breaker before starting!", "Test for power with a voltage tester before touching any wires.", "If unsure, call a professional electrician. Revogreen can assist."]
- additionalAdvice: "Ensure the new switch is a like-for-like replacement in terms of type and rating. You can find quality SON-certified switches at Revogreen Energy Hub."
- isComplexProject: false

Keep your language clear, direct, and safety-conscious.`,
	OutputContract: `Respond ONLY with a valid JSON object in this exact shape, with no preamble, no markdown, and no backticks:
{"projectName": "name for the project", "materialsNeeded": ["material 1"], "toolsTypicallyRequired": ["tool 1"], "safetyPrecautions": ["precaution 1"], "additionalAdvice": "other relevant advice", "isComplexProject": false}`,
}

func ProjectCanned() models.ProjectResponse {
	return models.ProjectResponse{
		ProjectName:            "Project Planning Assistance",
		MaterialsNeeded:        []string{"Revogreen Energy Hub stocks SON-certified materials for most household electrical projects."},
		ToolsTypicallyRequired: []string{"Our experts can advise on the right tools for your specific project."},
		SafetyPrecautions:      []string{"Always turn off power at the main breaker before starting any electrical work.", "If unsure at any point, consult a qualified electrician."},
		AdditionalAdvice: "Our AI project planner is currently being configured. " +
			"Call Revogreen Energy Hub at " + ContactPhone + " and our experts will help you plan the materials, tools, and safety steps for your project.",
		IsComplexProject: false,
	}
}

func ProjectInvalid() models.ProjectResponse {
	return models.ProjectResponse{
		MaterialsNeeded:        []string{},
		ToolsTypicallyRequired: []string{},
		SafetyPrecautions:      []string{},
		AdditionalAdvice:       `Please describe the electrical project you have in mind (e.g., "I want to install an extra socket in my bedroom").`,
	}
}

func ProjectFailure() models.ProjectResponse {
	return models.ProjectResponse{
		ProjectName:            "Error in Planning",
		MaterialsNeeded:        []string{"Could not generate a material list this time."},
		ToolsTypicallyRequired: []string{},
		SafetyPrecautions:      []string{"Always prioritize safety. If unsure, consult a professional."},
		AdditionalAdvice:       withContact("An error occurred while generating the project plan. Please try again."),
		IsComplexProject:       false,
	}
}

func ProjectRateLimited(msg string) models.ProjectResponse {
	return models.ProjectResponse{
		MaterialsNeeded:        []string{},
		ToolsTypicallyRequired: []string{},
		SafetyPrecautions:      []string{},
		AdditionalAdvice:       withContact(msg),
	}
}
