package translator

import (
	"fmt"
	"strings"

	"github.com/MimeLyc/srt-batch-translator/internal/subtitle"
)

// BuildPrompt renders a batch into a system instruction and user content.
//
// The user content is one "{id} >>> {text}" line per record, in batch
// order. The system instruction pins the reply format down hard: the
// response parser only understands "ID >>> Translated Text" lines, and
// the validation/bisection machinery exists because backends do not
// always comply.
func BuildPrompt(batch []subtitle.Line, targetLang string) (systemPrompt string, userContent string) {
	formatted := make([]string, 0, len(batch))
	for _, line := range batch {
		formatted = append(formatted, fmt.Sprintf("%s >>> %s", line.ID, line.Text))
	}

	systemPrompt = fmt.Sprintf(
		"You are a professional translator. Translate the text to %s.\n"+
			"RULES:\n"+
			"1. Output format must be strictly: ID >>> Translated Text\n"+
			"2. Maintain the exact same IDs as the input.\n"+
			"3. Keep HTML tags (<i>, <b>) exactly as they are.\n"+
			"4. Do not output anything else.",
		targetLang)

	return systemPrompt, strings.Join(formatted, "\n")
}
