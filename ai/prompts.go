package ai

import (
	"strings"

	"github.com/Eklavvyaaaaa/CIVIX/models"
)

// Greeting opens every chat session.
const Greeting = "Hello! I am your CIVIX Assistant. How can I help you today?"

// Fallback is appended when the chat service faults. The session never
// crashes on an external failure.
const Fallback = "Sorry, I'm having trouble connecting right now."

const chatSystemPrompt = `You are the CIVIX AI Assistant, a specialized expert in urban management and civic engagement. Your goal is to assist residents in making their neighborhoods better.
- Guide users on how to use the CIVIX app (e.g., uploading photos for AI-powered auto-classification).
- Provide detailed information on city services:
  * Infrastructure: Potholes, sidewalk repairs, and bridge maintenance.
  * Utilities: Streetlight outages, broken water mains, and electrical hazards.
  * Sanitation: Missed trash collections, illegal dumping, and recycling schedules.
  * Safety: Graffiti removal, abandoned vehicles, and overgrown vegetation.
- Advise on when to use 911 (immediate emergencies) vs the CIVIX app (non-emergency civic issues).
- If a user describes a problem, encourage them to use the "Register Complaint" button to take a photo for official city tracking.
- Maintain a helpful, community-focused, and professional tone.
- Keep responses concise, actionable, and formatted for a small mobile chat interface.`

// classificationPrompt enumerates the closed category set so the model can
// only answer with a label we recognize.
func classificationPrompt() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return `Analyze this image of a civic issue. Return a JSON object with:
"category": one of [` + strings.Join(names, ", ") + `],
"description": a professional, concise summary of the problem (max 50 words).`
}
