package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) *Config {
	return &Config{
		APIURL:      url,
		Model:       "llama3",
		MaxTokens:   8000,
		Temperature: 0.3,
		Timeout:     5,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://localhost:11434/v1")
	require.NoError(t, cfg.Validate())

	missingModel := *cfg
	missingModel.Model = ""
	require.Error(t, missingModel.Validate())

	badTemp := *cfg
	badTemp.Temperature = 3
	require.Error(t, badTemp.Validate())
}

func TestGetHeaders_KeyOptional(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://localhost:11434/v1")
	headers := cfg.GetHeaders()
	assert.Equal(t, "application/json", headers["Content-Type"])
	assert.NotContains(t, headers, "Authorization")

	cfg.APIKey = "secret"
	assert.Equal(t, "Bearer secret", cfg.GetHeaders()["Authorization"])
}

func TestChat_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		resp := ChatResponse{
			Choices: []Choice{
				{Message: Message{Role: "assistant", Content: "1 >>> Hola"}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	reply, err := client.Chat(context.Background(), "translate", "1 >>> Hello")
	require.NoError(t, err)
	assert.Equal(t, "1 >>> Hola", reply)
}

func TestChat_APIErrorEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ChatResponse{Error: &Error{Message: "model not found", Type: "invalid_request_error"}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Chat(context.Background(), "translate", "1 >>> Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestChat_HTTPStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Chat(context.Background(), "translate", "1 >>> Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestChat_NoChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(ChatResponse{}))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Chat(context.Background(), "translate", "1 >>> Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
