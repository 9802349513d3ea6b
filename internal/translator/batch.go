package translator

import (
	"context"
	"strings"
	"time"

	"github.com/MimeLyc/srt-batch-translator/internal/subtitle"
	"github.com/MimeLyc/srt-batch-translator/pkg/log"
)

const defaultRetryDelay = time.Second

// BatchTranslator translates batches of subtitle lines through a Backend,
// validating that every requested ID comes back and recursively bisecting
// batches the backend cannot answer completely.
type BatchTranslator struct {
	backend    Backend
	targetLang string
	maxRetries int
	retryDelay time.Duration
}

// NewBatchTranslator creates a translator for the given backend and target language
func NewBatchTranslator(backend Backend, targetLang string, maxRetries int) *BatchTranslator {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &BatchTranslator{
		backend:    backend,
		targetLang: targetLang,
		maxRetries: maxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// TranslateBatch returns a TranslationMap covering as many of the batch's
// IDs as achievable. It never fails: the worst outcome is an empty map,
// which the caller resolves by keeping the original text.
func (t *BatchTranslator) TranslateBatch(ctx context.Context, batch []subtitle.Line) TranslationMap {
	return t.translate(ctx, batch, 0)
}

func (t *BatchTranslator) translate(ctx context.Context, batch []subtitle.Line, depth int) TranslationMap {
	if len(batch) == 0 {
		return TranslationMap{}
	}

	// Build the prompt once per batch, not per attempt
	systemPrompt, userContent := BuildPrompt(batch, t.targetLang)
	indent := strings.Repeat("  ", depth)

	for attempt := 1; attempt <= t.maxRetries; attempt++ {
		reply, err := t.backend.Chat(ctx, systemPrompt, userContent)
		if err != nil {
			log.Error("%s[!] Error: %v", indent, err)
			time.Sleep(t.retryDelay)
			continue
		}

		translationMap := ParseResponse(reply)
		missing := missingIDs(batch, translationMap)
		if len(missing) == 0 {
			return translationMap
		}

		log.Warn("%s[?] Incomplete reply (attempt %d/%d): %d of %d IDs missing",
			indent, attempt, t.maxRetries, len(missing), len(batch))
	}

	// Retries exhausted. A single record is terminal: report it and let
	// the caller fall back to the original text.
	if len(batch) <= 1 {
		log.Error("%s[!!!] Failed specific line ID %q. Keeping original text.", indent, batch[0].ID)
		return TranslationMap{}
	}

	// Split and conquer: isolate the failing subset so one bad line does
	// not sacrifice the whole batch. Each half gets a fresh retry budget.
	mid := len(batch) / 2
	left := batch[:mid]
	right := batch[mid:]

	log.Warn("%s[RB] Batch failed. Splitting: %d -> %d + %d", indent, len(batch), len(left), len(right))

	result := t.translate(ctx, left, depth+1)
	for id, text := range t.translate(ctx, right, depth+1) {
		result[id] = text
	}
	return result
}

// missingIDs returns the batch IDs absent from the map, in batch order
func missingIDs(batch []subtitle.Line, translationMap TranslationMap) []string {
	var missing []string
	for _, line := range batch {
		if _, ok := translationMap[line.ID]; !ok {
			missing = append(missing, line.ID)
		}
	}
	return missing
}
