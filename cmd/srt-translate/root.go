package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MimeLyc/srt-batch-translator/internal/config"
	"github.com/MimeLyc/srt-batch-translator/internal/llm"
	"github.com/MimeLyc/srt-batch-translator/internal/service"
	"github.com/MimeLyc/srt-batch-translator/internal/subtitle"
	"github.com/MimeLyc/srt-batch-translator/internal/translator"
	"github.com/MimeLyc/srt-batch-translator/pkg/log"
)

func newRootCommand() *cobra.Command {
	var langFlag string
	var modelFlag string
	var batchSizeFlag int
	var retriesFlag int

	rootCmd := &cobra.Command{
		Use:           "srt-translate",
		Short:         "Translate SRT subtitles from stdin using an LLM backend",
		Long: "Reads an SRT file from stdin, translates it in batches through an\n" +
			"OpenAI-compatible chat API, and writes the translated SRT to stdout.\n" +
			"Diagnostics and progress go to stderr.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, langFlag, modelFlag, batchSizeFlag, retriesFlag)
		},
	}

	rootCmd.Flags().StringVar(&langFlag, "lang", "", "Target language (e.g. 'Spanish', 'French')")
	rootCmd.Flags().StringVar(&modelFlag, "model", "", "Model to use (default: llama3, or LLM_MODEL)")
	rootCmd.Flags().IntVar(&batchSizeFlag, "batch-size", 0, "Number of subtitles per batch (default: 20)")
	rootCmd.Flags().IntVar(&retriesFlag, "retries", 0, "Max retries per batch before splitting (default: 2)")
	_ = rootCmd.MarkFlagRequired("lang")

	return rootCmd
}

func run(cmd *cobra.Command, lang, model string, batchSize, retries int) error {
	in := cmd.InOrStdin()

	// Running without piped input is a usage error: bail out before any
	// processing rather than hanging on an interactive terminal.
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Please pipe an SRT file into this command. Example:")
		fmt.Fprintln(cmd.ErrOrStderr(), "  cat subs.srt | srt-translate --lang Spanish > subs_es.srt")
		return fmt.Errorf("no input provided")
	}

	cfg, err := config.NewFromEnv(
		config.WithTargetLanguage(lang),
		config.WithModel(model),
		config.WithBatchSize(batchSize),
		config.WithMaxRetries(retries),
	)
	if err != nil {
		return err
	}

	log.InitLogger(log.ParseLevel(cfg.LogLevel))

	content, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	file, err := subtitle.NewParser().Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse subtitles: %w", err)
	}

	client, err := llm.NewClient(&cfg.LLM)
	if err != nil {
		return err
	}

	trans := translator.NewBatchTranslator(client, cfg.Translate.TargetLanguage, cfg.Translate.MaxRetries)
	pipeline := service.NewPipeline(trans, subtitle.NewWriter(cmd.OutOrStdout()), service.Config{
		TargetLanguage: cfg.Translate.TargetLanguage,
		Model:          cfg.LLM.Model,
		BatchSize:      cfg.Translate.BatchSize,
	}, cmd.ErrOrStderr())

	return pipeline.Run(cmd.Context(), file)
}
