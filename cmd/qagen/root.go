package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/qagen/pkg/config"
	"github.com/artem13815/qagen/pkg/llm"
	"github.com/artem13815/qagen/pkg/llm/ollama"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// newGenerator builds the model client for a command run; tests replace it.
var newGenerator = func(cfg config.Config) llm.Generator {
	return ollama.New(cfg.OllamaURL, cfg.OllamaModel, cfg.LLMTimeout)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qagen",
		Short: "Generate manual QA test cases from domain knowledge with a local LLM",
		Long: `qagen combines a domain knowledge document with a user story or bug report,
asks an Ollama model for structured manual test cases and prints the raw result.
The HTTP service lives in cmd/server; this tool runs a single generation.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(newGenerateCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qagen %s\n", version)
		},
	}
}
