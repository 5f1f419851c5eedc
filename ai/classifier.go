package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Eklavvyaaaaa/CIVIX/models"
)

// Classify sends the captured photo with the fixed instructional prompt to
// the classification service and returns whatever usable suggestion comes
// back. Callers absorb faults; a failed call only means no autofill.
func (c *Client) Classify(ctx context.Context, image []byte, mimeType string) (models.Suggestion, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(classificationPrompt()),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("classify image: %w", err)
	}
	return parseSuggestion(resp.Text())
}

// parseSuggestion defensively decodes the service's loosely-typed JSON.
// A category outside the closed enumeration is treated as absent, never
// coerced. The description is used verbatim when present.
func parseSuggestion(text string) (models.Suggestion, error) {
	var raw struct {
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(stripFences(text)), &raw); err != nil {
		return models.Suggestion{}, fmt.Errorf("decode suggestion: %w", err)
	}

	var sug models.Suggestion
	if cat, ok := models.ParseCategory(strings.TrimSpace(raw.Category)); ok {
		sug.Category = cat
	}
	sug.Description = strings.TrimSpace(raw.Description)
	return sug, nil
}

// The model sometimes wraps JSON in a markdown code fence despite the
// response MIME type.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
