package ai

import (
	"context"
	"log"
	"sync"

	"google.golang.org/genai"
)

// Message is one entry in the assistant's linear conversation history.
type Message struct {
	Role string `json:"role"` // "user" or "bot"
	Text string `json:"text"`
}

// Assistant keeps an append-only, ordered conversation and relays each
// user message, together with the full running history, to the chat
// service. It shares no state with the report store or the submission
// workflow.
type Assistant struct {
	mu      sync.Mutex
	client  *Client
	history []Message
}

// NewAssistant starts a session seeded with the CIVIX greeting. client may
// be nil; every message then gets the fallback reply.
func NewAssistant(client *Client) *Assistant {
	return &Assistant{
		client:  client,
		history: []Message{{Role: "bot", Text: Greeting}},
	}
}

// History returns a copy of the conversation so far.
func (a *Assistant) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

// Send appends the user message, asks the chat service for a reply and
// appends it. A service fault is absorbed: the fallback apology is
// appended instead and no error escapes.
func (a *Assistant) Send(ctx context.Context, text string) Message {
	a.mu.Lock()
	a.history = append(a.history, Message{Role: "user", Text: text})
	contents := a.contentsLocked()
	a.mu.Unlock()

	reply := a.ask(ctx, contents)

	a.mu.Lock()
	defer a.mu.Unlock()
	msg := Message{Role: "bot", Text: reply}
	a.history = append(a.history, msg)
	return msg
}

func (a *Assistant) contentsLocked() []*genai.Content {
	contents := make([]*genai.Content, 0, len(a.history))
	for _, m := range a.history {
		var role genai.Role = genai.RoleUser
		if m.Role == "bot" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	return contents
}

func (a *Assistant) ask(ctx context.Context, contents []*genai.Content) string {
	if a.client == nil {
		return Fallback
	}
	resp, err := a.client.genai.Models.GenerateContent(ctx, a.client.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemPrompt, genai.RoleUser),
	})
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return Fallback
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return "I'm not sure how to answer that."
}
