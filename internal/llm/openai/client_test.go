package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"resume-builder/internal/llm"
)

func TestIsGPT5(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt5", model: "gpt-5", want: true},
		{name: "gpt5 variant", model: "gpt-5-mini", want: true},
		{name: "gpt5 uppercase", model: " GPT-5o ", want: true},
		{name: "gpt4", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := isGPT5(tt.model); got != tt.want {
				t.Fatalf("isGPT5(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("sk-test", " "); err == nil {
		t.Fatalf("expected error for missing model")
	}
	if _, err := NewClient("sk-test", "gpt-4o-mini"); err != nil {
		t.Fatalf("NewClient: %v", err)
	}
}

func TestCompleteSendsSystemMessageAndMaxTokens(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	var bodyMu sync.Mutex
	var lastBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		bodyMu.Lock()
		lastBody = payload
		bodyMu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Dear hiring manager  "}}]}`))
	}))
	defer server.Close()
	apiURL = server.URL

	client, err := NewClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	got, err := client.Complete(context.Background(), llm.CompleteInput{
		Prompt:       "Write a letter",
		SystemPrompt: "You are a writer.",
		MaxTokens:    2048,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Dear hiring manager" {
		t.Fatalf("expected trimmed content, got %q", got)
	}

	bodyMu.Lock()
	defer bodyMu.Unlock()
	messages, ok := lastBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected system+user messages, got %v", lastBody["messages"])
	}
	first := messages[0].(map[string]any)
	if first["role"] != "system" {
		t.Fatalf("expected first message role system, got %v", first["role"])
	}
	if lastBody["max_tokens"] != float64(2048) {
		t.Fatalf("expected max_tokens 2048, got %v", lastBody["max_tokens"])
	}
	if _, hasFormat := lastBody["response_format"]; hasFormat {
		t.Fatalf("expected no response_format for plain completion")
	}
}

func TestCompleteJSONParsesObject(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		format, ok := payload["response_format"].(map[string]any)
		if !ok || format["type"] != "json_object" {
			t.Errorf("expected json_object response_format, got %v", payload["response_format"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"skills\":[\"Go\",\"SQL\"]}"}}]}`))
	}))
	defer server.Close()
	apiURL = server.URL

	client, err := NewClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	result, err := client.CompleteJSON(context.Background(), llm.CompleteInput{Prompt: "organize", MaxTokens: 512})
	if err != nil {
		t.Fatalf("CompleteJSON: %v", err)
	}
	skills, ok := result["skills"].([]any)
	if !ok || len(skills) != 2 {
		t.Fatalf("expected two skills, got %v", result["skills"])
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()
	apiURL = server.URL

	client, err := NewClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Complete(context.Background(), llm.CompleteInput{Prompt: "hi"}); err == nil {
		t.Fatalf("expected error from API failure")
	}
}
