package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meeting-conflict-resolver/pkg/gemini"
)

func TestGeminiClient(t *testing.T) {
	t.Run("config validation", func(t *testing.T) {
		_, err := gemini.New(gemini.Config{})
		if err == nil {
			t.Errorf("expected missing API key error")
		}
	})

	t.Run("generate content", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, ":generateContent") {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"candidates": [
					{ "content": { "role": "model", "parts": [ { "text": "hello" } ] } }
				],
				"usageMetadata": { "promptTokenCount": 10, "candidatesTokenCount": 2, "totalTokenCount": 12 }
			}`))
		}))
		defer ts.Close()

		client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemPrompt: "be terse",
			Prompt:       "say hello",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "hello" {
			t.Errorf("text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 12 {
			t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("API error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client, _ := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
		_, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "x"})
		if err == nil {
			t.Errorf("expected API error")
		}
	})
}
