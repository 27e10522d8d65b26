package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, message interface{}, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if captured != nil {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}

		choices := []interface{}{}
		if message != nil {
			choices = append(choices, map[string]interface{}{"index": 0, "message": message, "finish_reason": "stop"})
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   "test-model",
			"choices": choices,
			"usage":   map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestChatGeneratorReturnsText(t *testing.T) {
	var request map[string]interface{}
	server := completionServer(t, http.StatusOK, map[string]interface{}{"role": "assistant", "content": "  [{\"name\":\"Ana\"}]  "}, &request)

	generator, err := NewChatGenerator(Config{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"}, zerolog.Nop())
	require.NoError(t, err)

	text, err := generator.Generate(context.Background(), "find creators")
	require.NoError(t, err)
	require.Equal(t, `[{"name":"Ana"}]`, text)

	require.Equal(t, "test-model", request["model"])
	messages := request["messages"].([]interface{})
	require.Len(t, messages, 1)
	require.Equal(t, "find creators", messages[0].(map[string]interface{})["content"])
}

func TestChatGeneratorRejectsNonTextContent(t *testing.T) {
	server := completionServer(t, http.StatusOK, map[string]interface{}{
		"role": "assistant",
		"content": []interface{}{
			map[string]interface{}{"type": "image_url", "image_url": map[string]string{"url": "https://example.com/a.png"}},
		},
	}, nil)

	generator, err := NewChatGenerator(Config{APIKey: "test-key", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), "caption")
	require.ErrorIs(t, err, ErrNonTextContent)
}

func TestChatGeneratorEmptyChoices(t *testing.T) {
	server := completionServer(t, http.StatusOK, nil, nil)

	generator, err := NewChatGenerator(Config{APIKey: "test-key", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), "gaps")
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestChatGeneratorUpstreamFailure(t *testing.T) {
	server := completionServer(t, http.StatusInternalServerError, nil, nil)

	generator, err := NewChatGenerator(Config{APIKey: "test-key", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), "gaps")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream exploded")
}

func TestNewGeneratorDefaultsToAnthropic(t *testing.T) {
	_, err := NewGenerator(Config{}, zerolog.Nop())
	require.ErrorIs(t, err, ErrMissingAPIKey)

	generator, err := NewGenerator(Config{APIKey: "key"}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, ProviderAnthropic, generator.cfg.Provider)
	require.Equal(t, AnthropicDefaultModel, generator.Model())

	generator, err = NewGenerator(Config{Provider: ProviderOpenAI, APIKey: "key"}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, defaultOpenAIModel, generator.Model())
}
