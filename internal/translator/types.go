package translator

import "context"

// Backend is the text-generation service behind the translator.
// One request/response call, no session state between calls.
type Backend interface {
	Chat(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}

// TranslationMap maps a subtitle ID to its translated text.
// Built fresh per batch attempt, never persisted.
type TranslationMap map[string]string
