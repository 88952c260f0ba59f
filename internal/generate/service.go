package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/prompts"
)

const (
	systemCoverLetter  = "You are a professional career coach and resume writer. Write compelling, personalized cover letters."
	systemOutreach     = "You are a professional networking coach. Write genuine, engaging cold outreach messages."
	systemWriter       = "You are a professional resume writer."
	systemWriterJSON   = "You are a professional resume writer. Return valid JSON only."
	maxTokensLetter    = 2048
	maxTokensOutreach  = 1024
	maxTokensSection   = 1024
	maxTokensShortForm = 512
)

// Service renders effective prompt templates and delegates to the completion
// client. Template or completion failures propagate to the caller.
type Service struct {
	Registry *prompts.Service
	LLM      llm.Client
}

// ExperienceInput describes an experience entry to regenerate.
type ExperienceInput struct {
	Title       string
	Company     string
	Duration    string
	Description []string
	Context     string
	JobDesc     string
}

// ProjectInput describes a project entry to regenerate.
type ProjectInput struct {
	Title        string
	Technologies []string
	Description  []string
	Context      string
	JobDesc      string
}

// CoverLetter generates a cover letter from structured resume data and a job
// description, written in the requested output language.
func (s *Service) CoverLetter(ctx context.Context, resumeData map[string]any, jobDescription, language string) (string, error) {
	prompt, err := s.render(ctx, prompts.IDCoverLetter, map[string]string{
		"job_description": jobDescription,
		"resume_data":     mustIndentJSON(resumeData),
		"output_language": LanguageName(language),
	})
	if err != nil {
		return "", err
	}
	result, err := s.LLM.Complete(ctx, llm.CompleteInput{
		Prompt:       prompt,
		SystemPrompt: systemCoverLetter,
		MaxTokens:    maxTokensLetter,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// OutreachMessage generates a cold outreach message for networking.
func (s *Service) OutreachMessage(ctx context.Context, resumeData map[string]any, jobDescription, language string) (string, error) {
	prompt, err := s.render(ctx, prompts.IDOutreachMessage, map[string]string{
		"job_description": jobDescription,
		"resume_data":     mustIndentJSON(resumeData),
		"output_language": LanguageName(language),
	})
	if err != nil {
		return "", err
	}
	result, err := s.LLM.Complete(ctx, llm.CompleteInput{
		Prompt:       prompt,
		SystemPrompt: systemOutreach,
		MaxTokens:    maxTokensOutreach,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// RegenerateSummary rewrites the professional summary.
func (s *Service) RegenerateSummary(ctx context.Context, currentSummary, userContext, jobDescription string) (string, error) {
	prompt, err := s.render(ctx, prompts.IDRegenerateSummary, map[string]string{
		"current_content":     currentSummary,
		"context_instruction": contextInstruction(userContext),
		"job_instruction":     jobInstruction(jobDescription),
	})
	if err != nil {
		return "", err
	}
	result, err := s.LLM.Complete(ctx, llm.CompleteInput{
		Prompt:       prompt,
		SystemPrompt: systemWriter,
		MaxTokens:    maxTokensShortForm,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// RegenerateExperience rewrites an experience entry's bullet points. If the
// completion lacks the expected field, the caller's bullets are returned
// unchanged.
func (s *Service) RegenerateExperience(ctx context.Context, in ExperienceInput) ([]string, error) {
	prompt, err := s.render(ctx, prompts.IDRegenerateExperience, map[string]string{
		"title":               in.Title,
		"company":             in.Company,
		"duration":            in.Duration,
		"description":         bulletList(in.Description),
		"context_instruction": contextInstruction(in.Context),
		"job_instruction":     jobInstruction(in.JobDesc),
	})
	if err != nil {
		return nil, err
	}
	result, err := s.LLM.CompleteJSON(ctx, llm.CompleteInput{
		Prompt:       prompt,
		SystemPrompt: systemWriterJSON,
		MaxTokens:    maxTokensSection,
	})
	if err != nil {
		return nil, err
	}
	return stringList(result, "description", in.Description), nil
}

// RegenerateProject rewrites a project entry's bullet points, with the same
// fallback behavior as RegenerateExperience.
func (s *Service) RegenerateProject(ctx context.Context, in ProjectInput) ([]string, error) {
	technologies := "Not specified"
	if len(in.Technologies) > 0 {
		technologies = strings.Join(in.Technologies, ", ")
	}
	prompt, err := s.render(ctx, prompts.IDRegenerateProject, map[string]string{
		"title":               in.Title,
		"technologies":        technologies,
		"description":         bulletList(in.Description),
		"context_instruction": contextInstruction(in.Context),
		"job_instruction":     jobInstruction(in.JobDesc),
	})
	if err != nil {
		return nil, err
	}
	result, err := s.LLM.CompleteJSON(ctx, llm.CompleteInput{
		Prompt:       prompt,
		SystemPrompt: systemWriterJSON,
		MaxTokens:    maxTokensSection,
	})
	if err != nil {
		return nil, err
	}
	return stringList(result, "description", in.Description), nil
}

// RegenerateSkills reorganizes and improves the skills list, falling back to
// the caller's skills when the completion lacks the expected field.
func (s *Service) RegenerateSkills(ctx context.Context, currentSkills []string, userContext, jobDescription string) ([]string, error) {
	prompt, err := s.render(ctx, prompts.IDRegenerateSkills, map[string]string{
		"current_content":     strings.Join(currentSkills, ", "),
		"context_instruction": contextInstruction(userContext),
		"job_instruction":     jobInstruction(jobDescription),
	})
	if err != nil {
		return nil, err
	}
	result, err := s.LLM.CompleteJSON(ctx, llm.CompleteInput{
		Prompt:       prompt,
		SystemPrompt: systemWriterJSON,
		MaxTokens:    maxTokensShortForm,
	})
	if err != nil {
		return nil, err
	}
	return stringList(result, "skills", currentSkills), nil
}

func (s *Service) render(ctx context.Context, id string, vars map[string]string) (string, error) {
	template, err := s.Registry.GetPrompt(ctx, id)
	if err != nil {
		return "", err
	}
	return prompts.Render(template, vars), nil
}

func contextInstruction(userContext string) string {
	if userContext == "" {
		return ""
	}
	return "\nAdditional Context from User:\n" + userContext + "\n"
}

func jobInstruction(jobDescription string) string {
	if jobDescription == "" {
		return ""
	}
	return "\nTarget Job Description:\n" + jobDescription + "\n\nTailor the content to match this job's requirements."
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func stringList(result map[string]any, key string, fallback []string) []string {
	raw, ok := result[key].([]any)
	if !ok {
		return fallback
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func mustIndentJSON(data map[string]any) string {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(raw)
}
