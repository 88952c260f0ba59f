package main

// Render an effective prompt template against sample variables, optionally
// sending it to the completion provider:
//   go run ./cmd/prompttest -prompt cover_letter -vars sample.json
//   go run ./cmd/prompttest -prompt cover_letter -vars sample.json -complete

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-builder/internal/llm"
	openai "resume-builder/internal/llm/openai"
	"resume-builder/internal/prompts"
	"resume-builder/internal/shared/config"
)

func main() {
	cfg := config.Load()

	promptID := flag.String("prompt", "", "Prompt id to render")
	varsPath := flag.String("vars", "", "Path to JSON file of template variables (optional)")
	complete := flag.Bool("complete", false, "Send the rendered prompt to the completion provider")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "Path to write the output (optional)")
	flag.Parse()

	if strings.TrimSpace(*promptID) == "" {
		fmt.Fprintln(os.Stderr, "available prompts:")
		for _, def := range prompts.Catalog() {
			fmt.Fprintf(os.Stderr, "  %-22s %s\n", def.ID, def.Description)
		}
		exitErr("prompt id is required")
	}

	vars := map[string]string{}
	if strings.TrimSpace(*varsPath) != "" {
		raw, err := os.ReadFile(*varsPath)
		if err != nil {
			exitErr(fmt.Sprintf("read vars file: %v", err))
		}
		if err := json.Unmarshal(raw, &vars); err != nil {
			exitErr(fmt.Sprintf("parse vars file: %v", err))
		}
	}

	ctx := context.Background()
	registry := prompts.NewService(prompts.NewFileStore(cfg.PromptsFile))

	template, err := registry.GetPrompt(ctx, *promptID)
	if err != nil {
		exitErr(fmt.Sprintf("load prompt: %v", err))
	}
	rendered := prompts.Render(template, vars)

	output := rendered
	if *complete {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), *model)
		if err != nil {
			exitErr(err.Error())
		}
		result, err := client.Complete(ctx, llm.CompleteInput{
			Prompt:    rendered,
			MaxTokens: 1024,
		})
		if err != nil {
			exitErr(fmt.Sprintf("llm complete: %v", err))
		}
		output = result
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(output), 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	fmt.Println(output)
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
