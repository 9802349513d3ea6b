package subtitle

import (
	"bufio"
	"fmt"
	"io"
)

// StreamWriter serializes subtitle files onto an output stream
type StreamWriter struct {
	out io.Writer
}

// NewWriter creates a subtitle writer targeting the given stream
func NewWriter(out io.Writer) Writer {
	return &StreamWriter{out: out}
}

// Write emits each line as an SRT block: index, timecode, text, blank line.
// Record order is the file's original order.
func (w *StreamWriter) Write(file *File) error {
	if file == nil {
		return fmt.Errorf("subtitle data is empty")
	}

	writer := bufio.NewWriter(w.out)

	for _, line := range file.Lines {
		// use translated text, fall back to original if empty
		text := line.TranslatedText
		if text == "" {
			text = line.Text
		}

		if _, err := fmt.Fprintf(writer, "%s\n%s\n%s\n\n", line.ID, line.Timecode, text); err != nil {
			return fmt.Errorf("failed to write subtitle block: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
