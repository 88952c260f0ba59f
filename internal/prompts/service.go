package prompts

import (
	"context"
	"fmt"
	"strings"
)

// Service merges the fixed catalog with operator overrides from a Store.
// Every operation reads the store fresh; nothing is cached between calls.
type Service struct {
	store Store
}

// NewService constructs a Service over the given override store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetPrompt returns the effective content for id: the custom override when one
// is set, otherwise the compiled-in default.
func (s *Service) GetPrompt(ctx context.Context, id string) (string, error) {
	def, ok := Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPrompt, id)
	}
	snap, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if custom := snap.Prompts[id]; custom != "" {
		return custom, nil
	}
	return def.DefaultContent, nil
}

// IsEnabled reports whether id is enabled, defaulting to true when no
// preference is stored. Unknown ids report false rather than failing.
func (s *Service) IsEnabled(ctx context.Context, id string) bool {
	if _, ok := Lookup(id); !ok {
		return false
	}
	snap, err := s.store.Load(ctx)
	if err != nil {
		return true
	}
	return isEnabled(snap, id)
}

// EnabledIDs returns the ids of all enabled prompts in catalog order.
func (s *Service) EnabledIDs(ctx context.Context) ([]string, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	var enabled []string
	for _, def := range catalog {
		if isEnabled(snap, def.ID) {
			enabled = append(enabled, def.ID)
		}
	}
	return enabled, nil
}

// Get returns the merged view for a single prompt.
func (s *Service) Get(ctx context.Context, id string) (EffectivePrompt, error) {
	def, ok := Lookup(id)
	if !ok {
		return EffectivePrompt{}, fmt.Errorf("%w: %s", ErrUnknownPrompt, id)
	}
	snap, err := s.store.Load(ctx)
	if err != nil {
		return EffectivePrompt{}, err
	}
	return effective(def, snap), nil
}

// GetAll returns the merged view for every catalog entry, keyed by id.
func (s *Service) GetAll(ctx context.Context) (map[string]EffectivePrompt, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string]EffectivePrompt, len(catalog))
	for _, def := range catalog {
		result[def.ID] = effective(def, snap)
	}
	return result, nil
}

// Update applies the patch to id and persists the result. Empty or
// whitespace-only content clears the custom content; likewise for the custom
// name. Enabled is stored verbatim and, once set, stays explicit.
func (s *Service) Update(ctx context.Context, id string, patch UpdatePatch) (EffectivePrompt, error) {
	def, ok := Lookup(id)
	if !ok {
		return EffectivePrompt{}, fmt.Errorf("%w: %s", ErrUnknownPrompt, id)
	}

	snap, err := s.store.Load(ctx)
	if err != nil {
		return EffectivePrompt{}, err
	}

	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) != "" {
			snap.Prompts[id] = *patch.Content
		} else {
			delete(snap.Prompts, id)
		}
	}

	if patch.CustomName != nil || patch.Enabled != nil {
		pref := snap.Preferences[id]

		if patch.CustomName != nil {
			if trimmed := strings.TrimSpace(*patch.CustomName); trimmed != "" {
				pref.CustomName = &trimmed
			} else {
				pref.CustomName = nil
			}
		}
		if patch.Enabled != nil {
			value := *patch.Enabled
			pref.Enabled = &value
		}

		snap.Preferences[id] = pref
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return EffectivePrompt{}, err
	}
	return effective(def, snap), nil
}

// Reset clears custom content and custom name for id, preserving the enabled
// state (explicit true if a preference record existed without one).
func (s *Service) Reset(ctx context.Context, id string) (EffectivePrompt, error) {
	def, ok := Lookup(id)
	if !ok {
		return EffectivePrompt{}, fmt.Errorf("%w: %s", ErrUnknownPrompt, id)
	}

	snap, err := s.store.Load(ctx)
	if err != nil {
		return EffectivePrompt{}, err
	}

	delete(snap.Prompts, id)
	if pref, ok := snap.Preferences[id]; ok {
		enabled := true
		if pref.Enabled != nil {
			enabled = *pref.Enabled
		}
		snap.Preferences[id] = Preference{Enabled: &enabled}
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return EffectivePrompt{}, err
	}
	return effective(def, snap), nil
}

// ResetAll clears every custom content and custom name, keeping only the
// enabled states that were explicitly set.
func (s *Service) ResetAll(ctx context.Context) error {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	snap.Prompts = map[string]string{}
	kept := map[string]Preference{}
	for id, pref := range snap.Preferences {
		if pref.Enabled != nil {
			value := *pref.Enabled
			kept[id] = Preference{Enabled: &value}
		}
	}
	snap.Preferences = kept

	return s.store.Save(ctx, snap)
}

// Summary aggregates counts and token estimates over the whole catalog.
// TotalTokensEnabled sums token counts only over enabled prompts.
func (s *Service) Summary(ctx context.Context) (UsageSummary, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return UsageSummary{}, err
	}

	summary := UsageSummary{
		TotalPrompts: len(all),
		PromptsByCategory: map[Category][]EffectivePrompt{
			CategoryGeneration: {},
			CategoryAnalysis:   {},
			CategoryParsing:    {},
		},
	}
	for _, def := range catalog {
		p := all[def.ID]
		if p.IsEnabled {
			summary.EnabledCount++
			summary.TotalTokensEnabled += p.TokenCount
		}
		if p.IsCustom {
			summary.CustomCount++
		}
		summary.PromptsByCategory[p.Category] = append(summary.PromptsByCategory[p.Category], p)
	}
	return summary, nil
}

func effective(def Definition, snap Snapshot) EffectivePrompt {
	custom := snap.Prompts[def.ID]
	pref := snap.Preferences[def.ID]

	content := def.DefaultContent
	if custom != "" {
		content = custom
	}
	name := def.Name
	if pref.CustomName != nil && *pref.CustomName != "" {
		name = *pref.CustomName
	}

	return EffectivePrompt{
		ID:                def.ID,
		Name:              name,
		DefaultName:       def.Name,
		Description:       def.Description,
		Category:          def.Category,
		Variables:         def.Variables,
		UsedIn:            def.UsedIn,
		IsCustom:          custom != "",
		IsEnabled:         pref.Enabled == nil || *pref.Enabled,
		Content:           content,
		DefaultContent:    def.DefaultContent,
		TokenCount:        EstimateTokens(content),
		DefaultTokenCount: EstimateTokens(def.DefaultContent),
	}
}

func isEnabled(snap Snapshot, id string) bool {
	pref := snap.Preferences[id]
	return pref.Enabled == nil || *pref.Enabled
}
