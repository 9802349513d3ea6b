package service

import (
	"context"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"golang.org/x/text/language"

	"github.com/MimeLyc/srt-batch-translator/internal/subtitle"
	"github.com/MimeLyc/srt-batch-translator/internal/translator"
	"github.com/MimeLyc/srt-batch-translator/pkg/log"
)

// BatchTranslator resolves one batch into a TranslationMap. It never
// fails; missing IDs mean the record keeps its original text.
type BatchTranslator interface {
	TranslateBatch(ctx context.Context, batch []subtitle.Line) translator.TranslationMap
}

// Config contains pipeline configuration
type Config struct {
	TargetLanguage string
	Model          string
	BatchSize      int
}

// Pipeline drives a full translation run: chunk the parsed lines into
// contiguous batches, translate them strictly one at a time, merge the
// results back into the lines, and serialize.
type Pipeline struct {
	translator  BatchTranslator
	writer      subtitle.Writer
	config      Config
	progressOut io.Writer
}

// NewPipeline creates a pipeline writing translated subtitles through the
// given writer. Progress is rendered onto progressOut (the diagnostic
// stream, never the data stream).
func NewPipeline(trans BatchTranslator, writer subtitle.Writer, config Config, progressOut io.Writer) *Pipeline {
	if config.BatchSize < 1 {
		config.BatchSize = 20
	}
	return &Pipeline{
		translator:  trans,
		writer:      writer,
		config:      config,
		progressOut: progressOut,
	}
}

// Run translates the whole file and writes the result. Every line ends up
// with non-empty translated text: a validated translation where the
// backend delivered one, the original text otherwise.
func (p *Pipeline) Run(ctx context.Context, file *subtitle.File) error {
	batches := chunkLines(file.Lines, p.config.BatchSize)

	log.Info("Translating %d lines to %s using %s...",
		len(file.Lines), p.config.TargetLanguage, p.config.Model)
	if file.Language != language.Und {
		log.Info("Detected source language: %s", file.Language)
	}

	tracker := p.startProgress(len(batches))

	for _, batch := range batches {
		translationMap := p.translator.TranslateBatch(ctx, batch)

		// batch is a sub-slice of file.Lines, so this fills the file
		for i := range batch {
			if text, ok := translationMap[batch[i].ID]; ok {
				batch[i].TranslatedText = text
			} else {
				batch[i].TranslatedText = batch[i].Text
			}
		}

		tracker.Increment(1)
	}

	tracker.MarkAsDone()

	return p.writer.Write(file)
}

// startProgress renders a tqdm-style batch tracker on the diagnostic stream
func (p *Pipeline) startProgress(totalBatches int) *progress.Tracker {
	pw := progress.NewWriter()
	pw.SetOutputWriter(p.progressOut)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(25)
	pw.SetUpdateFrequency(100 * time.Millisecond)

	tracker := &progress.Tracker{
		Message: "Translating",
		Total:   int64(totalBatches),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(tracker)
	go pw.Render()

	return tracker
}

// chunkLines partitions lines into contiguous batches of at most size.
// The batches are disjoint views over the original slice and concatenate
// back to it in order.
func chunkLines(lines []subtitle.Line, size int) [][]subtitle.Line {
	var batches [][]subtitle.Line
	for i := 0; i < len(lines); i += size {
		end := min(i+size, len(lines))
		batches = append(batches, lines[i:end])
	}
	return batches
}
