package generate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/llm"
	"resume-builder/internal/prompts"
)

type fakeClient struct {
	completeInput llm.CompleteInput
	completeOut   string
	completeErr   error

	jsonInput llm.CompleteInput
	jsonOut   map[string]any
	jsonErr   error
}

func (f *fakeClient) Complete(ctx context.Context, input llm.CompleteInput) (string, error) {
	f.completeInput = input
	return f.completeOut, f.completeErr
}

func (f *fakeClient) CompleteJSON(ctx context.Context, input llm.CompleteInput) (map[string]any, error) {
	f.jsonInput = input
	return f.jsonOut, f.jsonErr
}

func newTestService(t *testing.T, client llm.Client) *Service {
	t.Helper()
	registry := prompts.NewService(prompts.NewFileStore(filepath.Join(t.TempDir(), "prompts.json")))
	return &Service{Registry: registry, LLM: client}
}

func TestCoverLetterRendersPrompt(t *testing.T) {
	fake := &fakeClient{completeOut: "  Dear Hiring Manager,\nBest regards\n"}
	svc := newTestService(t, fake)

	resume := map[string]any{"personal": map[string]any{"name": "Ana"}}
	letter, err := svc.CoverLetter(context.Background(), resume, "Go developer role", "es")
	if err != nil {
		t.Fatalf("CoverLetter: %v", err)
	}
	if letter != "Dear Hiring Manager,\nBest regards" {
		t.Fatalf("expected trimmed result, got %q", letter)
	}

	in := fake.completeInput
	if in.SystemPrompt != systemCoverLetter {
		t.Fatalf("unexpected system prompt %q", in.SystemPrompt)
	}
	if in.MaxTokens != maxTokensLetter {
		t.Fatalf("expected max tokens %d, got %d", maxTokensLetter, in.MaxTokens)
	}
	if !strings.Contains(in.Prompt, "Go developer role") {
		t.Fatalf("expected job description in prompt")
	}
	if !strings.Contains(in.Prompt, "Spanish") {
		t.Fatalf("expected language name in prompt")
	}
	// Resume data is embedded as indented JSON.
	if !strings.Contains(in.Prompt, `"name": "Ana"`) {
		t.Fatalf("expected resume data in prompt, got %q", in.Prompt)
	}
	if strings.Contains(in.Prompt, "{resume_data}") || strings.Contains(in.Prompt, "{output_language}") {
		t.Fatalf("expected placeholders substituted")
	}
}

func TestCoverLetterUsesCustomTemplate(t *testing.T) {
	fake := &fakeClient{completeOut: "ok"}
	svc := newTestService(t, fake)

	custom := "CUSTOM TEMPLATE job={job_description} lang={output_language}"
	if _, err := svc.Registry.Update(context.Background(), prompts.IDCoverLetter, prompts.UpdatePatch{Content: &custom}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := svc.CoverLetter(context.Background(), nil, "the job", ""); err != nil {
		t.Fatalf("CoverLetter: %v", err)
	}
	if fake.completeInput.Prompt != "CUSTOM TEMPLATE job=the job lang=English" {
		t.Fatalf("expected custom template rendered, got %q", fake.completeInput.Prompt)
	}
}

func TestCoverLetterPropagatesClientError(t *testing.T) {
	fake := &fakeClient{completeErr: llm.ErrNotConfigured}
	svc := newTestService(t, fake)

	_, err := svc.CoverLetter(context.Background(), nil, "job", "")
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestOutreachMessage(t *testing.T) {
	fake := &fakeClient{completeOut: "Hi there"}
	svc := newTestService(t, fake)

	message, err := svc.OutreachMessage(context.Background(), map[string]any{}, "job desc", "zh")
	if err != nil {
		t.Fatalf("OutreachMessage: %v", err)
	}
	if message != "Hi there" {
		t.Fatalf("unexpected message %q", message)
	}
	if fake.completeInput.SystemPrompt != systemOutreach {
		t.Fatalf("unexpected system prompt %q", fake.completeInput.SystemPrompt)
	}
	if fake.completeInput.MaxTokens != maxTokensOutreach {
		t.Fatalf("expected max tokens %d, got %d", maxTokensOutreach, fake.completeInput.MaxTokens)
	}
	if !strings.Contains(fake.completeInput.Prompt, "Chinese") {
		t.Fatalf("expected language name in prompt")
	}
}

func TestRegenerateSummaryInstructions(t *testing.T) {
	fake := &fakeClient{completeOut: "A new summary."}
	svc := newTestService(t, fake)
	ctx := context.Background()

	if _, err := svc.RegenerateSummary(ctx, "old summary", "emphasize leadership", "backend role"); err != nil {
		t.Fatalf("RegenerateSummary: %v", err)
	}
	prompt := fake.completeInput.Prompt
	if !strings.Contains(prompt, "old summary") {
		t.Fatalf("expected current content in prompt")
	}
	if !strings.Contains(prompt, "Additional Context from User:\nemphasize leadership") {
		t.Fatalf("expected context instruction, got %q", prompt)
	}
	if !strings.Contains(prompt, "Target Job Description:\nbackend role") {
		t.Fatalf("expected job instruction, got %q", prompt)
	}
	if !strings.Contains(prompt, "Tailor the content to match this job's requirements.") {
		t.Fatalf("expected tailoring line, got %q", prompt)
	}
	if fake.completeInput.MaxTokens != maxTokensShortForm {
		t.Fatalf("expected max tokens %d, got %d", maxTokensShortForm, fake.completeInput.MaxTokens)
	}
	if fake.completeInput.SystemPrompt != systemWriter {
		t.Fatalf("unexpected system prompt %q", fake.completeInput.SystemPrompt)
	}

	// Empty context and job description leave no instruction fragments behind.
	if _, err := svc.RegenerateSummary(ctx, "old summary", "", ""); err != nil {
		t.Fatalf("RegenerateSummary: %v", err)
	}
	prompt = fake.completeInput.Prompt
	if strings.Contains(prompt, "Additional Context from User") {
		t.Fatalf("expected no context instruction, got %q", prompt)
	}
	if strings.Contains(prompt, "Target Job Description") {
		t.Fatalf("expected no job instruction, got %q", prompt)
	}
	if strings.Contains(prompt, "{context_instruction}") || strings.Contains(prompt, "{job_instruction}") {
		t.Fatalf("expected placeholders substituted, got %q", prompt)
	}
}

func TestRegenerateExperience(t *testing.T) {
	fake := &fakeClient{jsonOut: map[string]any{
		"description": []any{"Led a team of 4", "Shipped the v2 API"},
	}}
	svc := newTestService(t, fake)

	out, err := svc.RegenerateExperience(context.Background(), ExperienceInput{
		Title:       "Engineer",
		Company:     "Acme",
		Duration:    "2020-2023",
		Description: []string{"did stuff", "more stuff"},
	})
	if err != nil {
		t.Fatalf("RegenerateExperience: %v", err)
	}
	if len(out) != 2 || out[0] != "Led a team of 4" {
		t.Fatalf("unexpected output %v", out)
	}

	prompt := fake.jsonInput.Prompt
	if !strings.Contains(prompt, "• did stuff\n• more stuff") {
		t.Fatalf("expected bulleted description, got %q", prompt)
	}
	if !strings.Contains(prompt, "Engineer") || !strings.Contains(prompt, "Acme") {
		t.Fatalf("expected title and company in prompt")
	}
	if fake.jsonInput.SystemPrompt != systemWriterJSON {
		t.Fatalf("unexpected system prompt %q", fake.jsonInput.SystemPrompt)
	}
	if fake.jsonInput.MaxTokens != maxTokensSection {
		t.Fatalf("expected max tokens %d, got %d", maxTokensSection, fake.jsonInput.MaxTokens)
	}
}

func TestRegenerateExperienceFallback(t *testing.T) {
	original := []string{"keep", "these"}
	svc := newTestService(t, nil)
	ctx := context.Background()

	// Missing key falls back to the caller's bullets.
	fake := &fakeClient{jsonOut: map[string]any{"other": "x"}}
	svc.LLM = fake
	out, err := svc.RegenerateExperience(ctx, ExperienceInput{Description: original})
	if err != nil {
		t.Fatalf("RegenerateExperience: %v", err)
	}
	if len(out) != 2 || out[0] != "keep" {
		t.Fatalf("expected fallback to input, got %v", out)
	}

	// Wrong type falls back too.
	fake.jsonOut = map[string]any{"description": "not a list"}
	out, err = svc.RegenerateExperience(ctx, ExperienceInput{Description: original})
	if err != nil {
		t.Fatalf("RegenerateExperience: %v", err)
	}
	if len(out) != 2 || out[1] != "these" {
		t.Fatalf("expected fallback to input, got %v", out)
	}

	// A present but empty list is honored as-is.
	fake.jsonOut = map[string]any{"description": []any{}}
	out, err = svc.RegenerateExperience(ctx, ExperienceInput{Description: original})
	if err != nil {
		t.Fatalf("RegenerateExperience: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list honored, got %v", out)
	}
}

func TestRegenerateProjectTechnologies(t *testing.T) {
	fake := &fakeClient{jsonOut: map[string]any{"description": []any{"Built it"}}}
	svc := newTestService(t, fake)
	ctx := context.Background()

	if _, err := svc.RegenerateProject(ctx, ProjectInput{
		Title:        "Side Project",
		Technologies: []string{"Go", "Postgres"},
	}); err != nil {
		t.Fatalf("RegenerateProject: %v", err)
	}
	if !strings.Contains(fake.jsonInput.Prompt, "Go, Postgres") {
		t.Fatalf("expected joined technologies, got %q", fake.jsonInput.Prompt)
	}

	if _, err := svc.RegenerateProject(ctx, ProjectInput{Title: "Side Project"}); err != nil {
		t.Fatalf("RegenerateProject: %v", err)
	}
	if !strings.Contains(fake.jsonInput.Prompt, "Not specified") {
		t.Fatalf("expected technologies placeholder text, got %q", fake.jsonInput.Prompt)
	}
}

func TestRegenerateSkills(t *testing.T) {
	fake := &fakeClient{jsonOut: map[string]any{
		"skills": []any{"Go", "Kubernetes", "PostgreSQL"},
	}}
	svc := newTestService(t, fake)

	out, err := svc.RegenerateSkills(context.Background(), []string{"go", "k8s"}, "", "")
	if err != nil {
		t.Fatalf("RegenerateSkills: %v", err)
	}
	if len(out) != 3 || out[2] != "PostgreSQL" {
		t.Fatalf("unexpected output %v", out)
	}
	if !strings.Contains(fake.jsonInput.Prompt, "go, k8s") {
		t.Fatalf("expected joined skills in prompt, got %q", fake.jsonInput.Prompt)
	}
	if fake.jsonInput.MaxTokens != maxTokensShortForm {
		t.Fatalf("expected max tokens %d, got %d", maxTokensShortForm, fake.jsonInput.MaxTokens)
	}
}

func TestRegenerateSkillsFallback(t *testing.T) {
	fake := &fakeClient{jsonOut: map[string]any{}}
	svc := newTestService(t, fake)

	out, err := svc.RegenerateSkills(context.Background(), []string{"go"}, "", "")
	if err != nil {
		t.Fatalf("RegenerateSkills: %v", err)
	}
	if len(out) != 1 || out[0] != "go" {
		t.Fatalf("expected fallback to input, got %v", out)
	}
}

func TestGenerationFailsWhenPromptUnknown(t *testing.T) {
	svc := newTestService(t, &fakeClient{})

	// Service methods surface registry lookups; a missing template is an
	// ErrUnknownPrompt, not a completion call.
	_, err := svc.render(context.Background(), "nonexistent_id", nil)
	if !errors.Is(err, prompts.ErrUnknownPrompt) {
		t.Fatalf("expected ErrUnknownPrompt, got %v", err)
	}
}
