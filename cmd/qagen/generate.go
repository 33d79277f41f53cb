package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/qagen/pkg/config"
	"github.com/artem13815/qagen/pkg/knowledge"
	"github.com/artem13815/qagen/pkg/logger"
	"github.com/artem13815/qagen/pkg/testcase"
)

type generateOptions struct {
	knowledgePath string
	story         string
	storyPath     string
	model         string
	url           string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate test cases for one user story",
		Example: `  qagen generate --knowledge docs/registration.pdf --story "As a nurse I want to register a patient"
  qagen generate --knowledge rules.md --story-file story.txt --model llama3.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.knowledgePath, "knowledge", "k", "", "domain knowledge file (txt, md, csv, json, pdf, docx)")
	f.StringVarP(&opts.story, "story", "s", "", "user story or bug report text")
	f.StringVar(&opts.storyPath, "story-file", "", "read the user story from a file")
	f.StringVar(&opts.model, "model", "", "override OLLAMA_MODEL")
	f.StringVar(&opts.url, "url", "", "override OLLAMA_URL")
	_ = cmd.MarkFlagRequired("knowledge")
	cmd.MarkFlagsMutuallyExclusive("story", "story-file")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	cfg := config.Load()
	if opts.model != "" {
		cfg.OllamaModel = opts.model
	}
	if opts.url != "" {
		cfg.OllamaURL = opts.url
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	data, err := os.ReadFile(opts.knowledgePath)
	if err != nil {
		return fmt.Errorf("read knowledge: %w", err)
	}
	text, err := knowledge.ExtractText(opts.knowledgePath, data)
	if err != nil {
		return fmt.Errorf("extract knowledge: %w", err)
	}
	store := knowledge.NewMemoryStore()
	if err := store.Replace(text); err != nil {
		return fmt.Errorf("%s: %w", opts.knowledgePath, err)
	}

	story := opts.story
	if opts.storyPath != "" {
		b, err := os.ReadFile(opts.storyPath)
		if err != nil {
			return fmt.Errorf("read story: %w", err)
		}
		story = strings.TrimRight(string(b), "\r\n")
	}

	svc := testcase.NewGenerationService(store, newGenerator(cfg))
	res, err := svc.Generate(cmd.Context(), story)
	if err != nil {
		if !errors.Is(err, testcase.ErrNoUserStory) {
			log.Error("test case generation failed", "error", err, "model", cfg.OllamaModel, "url", cfg.OllamaURL)
		}
		return err
	}
	log.Debug("test cases generated", "prompt_chars", res.PromptChars, "llm_ms", res.Duration.Milliseconds())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.TestCases)
	return err
}
