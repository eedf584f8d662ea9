package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-planner/internal/config"
)

func newTestGroqClient(url string) *GroqClient {
	c := NewGroqClient(&config.Config{GroqAPIKey: "groq_key", GroqModel: "test-model"})
	c.url = url
	return c
}

func TestGroqGenerateContent(t *testing.T) {
	schema := &Schema{
		Type:       TypeObject,
		Properties: map[string]*Schema{"tip": {Type: TypeString}},
		Required:   []string{"tip"},
	}

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer groq_key" {
				t.Errorf("Unexpected Authorization header '%s'", r.Header.Get("Authorization"))
			}

			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode request: %v", err)
			}
			if body["model"] != "test-model" {
				t.Errorf("Expected model 'test-model', got %v", body["model"])
			}
			format, ok := body["response_format"].(map[string]any)
			if !ok || format["type"] != "json_schema" {
				t.Errorf("Expected json_schema response format, got %v", body["response_format"])
			}

			fmt.Fprintln(w, `{
				"choices": [{"message": {"content": "{\"tip\": \"book early\"}"}}],
				"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
			}`)
		}))
		defer server.Close()

		resp, err := newTestGroqClient(server.URL).GenerateContent(context.Background(), "hello", schema)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.Content != `{"tip": "book early"}` {
			t.Errorf("Unexpected content '%s'", resp.Content)
		}
		if resp.Usage.PromptTokens != 12 || resp.Usage.CompletionTokens != 5 || resp.Usage.TotalTokens != 17 {
			t.Errorf("Unexpected usage %+v", resp.Usage)
		}
		if resp.Usage.Model != "test-model" {
			t.Errorf("Expected usage model 'test-model', got '%s'", resp.Usage.Model)
		}
	})

	t.Run("FreeText", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if _, ok := body["response_format"]; ok {
				t.Error("Did not expect a response_format without a schema")
			}
			fmt.Fprintln(w, `{"choices": [{"message": {"content": "plain"}}]}`)
		}))
		defer server.Close()

		resp, err := newTestGroqClient(server.URL).GenerateContent(context.Background(), "hello", nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.Content != "plain" {
			t.Errorf("Unexpected content '%s'", resp.Content)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": "bad key"}`)
		}))
		defer server.Close()

		_, err := newTestGroqClient(server.URL).GenerateContent(context.Background(), "hello", nil)
		if err == nil {
			t.Fatal("Expected an error for non-200 status code, got nil")
		}
		if !strings.Contains(err.Error(), "status=401") {
			t.Errorf("Expected status in error, got '%v'", err)
		}
	})

	t.Run("NoChoices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `{"choices": []}`)
		}))
		defer server.Close()

		_, err := newTestGroqClient(server.URL).GenerateContent(context.Background(), "hello", nil)
		if err == nil || err.Error() != "no content generated" {
			t.Errorf("Expected 'no content generated', got %v", err)
		}
	})
}
