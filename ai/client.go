package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the generative model both the classifier and the chat
// assistant talk to unless GEMINI_MODEL overrides it.
const DefaultModel = "gemini-3-flash-preview"

// Client wraps the Gemini API for the two external collaborators of the
// app: image classification and the chat assistant.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient dials the Gemini API. model may be empty to use DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	if model == "" {
		model = DefaultModel
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &Client{genai: gc, model: model}, nil
}
