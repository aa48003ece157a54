// Package prompts holds the prompt template and fallback texts for each
// AI capability. Templates are data: the flow executor renders whatever
// template it is given and never branches on capability.
package prompts

import (
	"fmt"
	"strings"

	"github.com/factism001/revogreen-ai-electrician/internal/models"
)

// ContactPhone is the human-staffed fallback channel quoted in every
// degraded or failed response.
const ContactPhone = "07067844630"

const businessProfile = `Revogreen Energy Hub is a professional retail and service business focused on providing reliable and affordable household electrical accessories to homes, contractors, and small businesses across Nigeria.
We specialize in the sales of quality electrical accessories such as switches, sockets, lampholders, copper wires, PVC pipes, energy-saving bulbs, ceramic fuses, distribution boards, and more. We are committed to providing affordable and reliable products and services.
Revogreen Energy Hub stands out for its commitment to SON-certified and trusted products, energy efficiency, and affordability. We focus on promoting safe electrical installations, provide honest advice to customers, and maintain competitive pricing.
Engagement and Contact: You can find these items and get expert advice at Revogreen Energy Hub. Feel free to contact us for product availability, recommendations, and purchases by calling us on ` + ContactPhone + `.`

const languagePolicy = `IMPORTANT: You MUST respond in English only, regardless of the language used in the user's query. If the user asks a question in another language, still provide your answer in English.`

// Template is the render contract for one capability: a persona, a
// domain-boundary policy, and a JSON output contract whose field names
// match the capability's response type.
type Template struct {
	Capability      string
	Persona         string
	HistoryGuidance string
	Policy          string
	InputLabel      string
	Task            string
	OutputContract  string
}

// Render assembles the full prompt from the template, the user input,
// and an already-trimmed conversation history.
func (t Template) Render(input string, turns []models.ConversationTurn) string {
	var b strings.Builder

	b.WriteString(t.Persona)
	b.WriteString("\n\n")

	if len(turns) > 0 {
		b.WriteString("Previous conversation context:\n")
		for _, turn := range turns {
			speaker := "User"
			if turn.Role == models.RoleModel {
				speaker = "Revodev"
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, turnText(turn))
		}
		b.WriteString("\n")
		b.WriteString(t.HistoryGuidance)
		b.WriteString("\n\n")
	}

	b.WriteString("About Revogreen Energy Hub:\n")
	b.WriteString(businessProfile)
	b.WriteString("\n\n")

	b.WriteString(t.Policy)
	b.WriteString("\n")
	b.WriteString(languagePolicy)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s:\n\"%s\"\n\n", t.InputLabel, input)

	if t.Task != "" {
		b.WriteString(t.Task)
		b.WriteString("\n\n")
	}

	b.WriteString(t.OutputContract)
	b.WriteString("\n")

	return b.String()
}

func turnText(turn models.ConversationTurn) string {
	var parts []string
	for _, p := range turn.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
		if p.InlineData != nil {
			parts = append(parts, "[image attached]")
		}
	}
	return strings.Join(parts, " ")
}

// withContact appends the human fallback channel to a message.
func withContact(msg string) string {
	return msg + " For immediate assistance, contact Revogreen Energy Hub at " + ContactPhone + "."
}
