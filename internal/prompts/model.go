package prompts

import "unicode/utf8"

// Category classifies what a prompt is used for.
type Category string

const (
	CategoryGeneration Category = "generation"
	CategoryAnalysis   Category = "analysis"
	CategoryParsing    Category = "parsing"
)

// Definition describes a compiled-in prompt template. The catalog of
// definitions is fixed at build time; ids are stable across versions.
type Definition struct {
	ID             string
	Name           string
	Description    string
	Category       Category
	DefaultContent string
	Variables      []string
	UsedIn         []string
}

// Preference holds per-prompt operator settings. Nil fields mean the
// implicit default (default name, enabled).
type Preference struct {
	CustomName *string `json:"custom_name,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

// Snapshot is the full override state read from or written to a Store.
// An absent entry is equivalent to no override.
type Snapshot struct {
	Prompts     map[string]string     `json:"prompts"`
	Preferences map[string]Preference `json:"preferences"`
}

// EmptySnapshot returns a snapshot with initialized, empty maps.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Prompts:     map[string]string{},
		Preferences: map[string]Preference{},
	}
}

func (s Snapshot) normalized() Snapshot {
	if s.Prompts == nil {
		s.Prompts = map[string]string{}
	}
	if s.Preferences == nil {
		s.Preferences = map[string]Preference{}
	}
	return s
}

// EffectivePrompt is the merged definition+override view returned to callers.
type EffectivePrompt struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	DefaultName       string   `json:"default_name"`
	Description       string   `json:"description"`
	Category          Category `json:"category"`
	Variables         []string `json:"variables"`
	UsedIn            []string `json:"used_in"`
	IsCustom          bool     `json:"is_custom"`
	IsEnabled         bool     `json:"is_enabled"`
	Content           string   `json:"content"`
	DefaultContent    string   `json:"default_content"`
	TokenCount        int      `json:"token_count"`
	DefaultTokenCount int      `json:"default_token_count"`
}

// UpdatePatch applies any subset of prompt settings. Nil fields are left
// unchanged; empty or whitespace-only Content/CustomName clear the override.
type UpdatePatch struct {
	Content    *string
	CustomName *string
	Enabled    *bool
}

// UsageSummary aggregates catalog-wide counts for UI display.
type UsageSummary struct {
	TotalPrompts       int                            `json:"total_prompts"`
	EnabledCount       int                            `json:"enabled_count"`
	CustomCount        int                            `json:"custom_count"`
	TotalTokensEnabled int                            `json:"total_tokens_enabled"`
	PromptsByCategory  map[Category][]EffectivePrompt `json:"prompts_by_category"`
}

// Rough approximation: ~4 chars per token. Not a real tokenizer.
const charsPerToken = 4

// EstimateTokens estimates the token count for a text string.
func EstimateTokens(text string) int {
	return utf8.RuneCountInString(text) / charsPerToken
}
