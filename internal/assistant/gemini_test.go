package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Contents, 1) && assert.Len(t, req.Contents[0].Parts, 1) {
			assert.Equal(t, "grow my account", req.Contents[0].Parts[0].Text)
		}
		assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 0.001)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"1. Post "},{"text":"daily."}]}},{"content":{"parts":[{"text":"ignored"}]}}]}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL + "/", APIKey: "secret", Model: "gemini-test"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	text, err := client.Generate(ctx, "grow my account", 0.7)
	require.NoError(t, err)
	assert.Equal(t, "1. Post daily.", text)
}

func TestGenerate_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL, APIKey: "secret", Model: "gemini-test"})

	_, err := client.Generate(context.Background(), "hi", 0.8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerate_NoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	client := NewClient(Config{BaseURL: ts.URL, APIKey: "secret", Model: "gemini-test"})

	_, err := client.Generate(context.Background(), "hi", 0.8)
	assert.Error(t, err)
}

func TestGenerate_NotConfigured(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://example.invalid", Model: "gemini-test"})

	_, err := client.Generate(context.Background(), "hi", 0.7)
	assert.ErrorIs(t, err, ErrNotConfigured)

	var nilClient *Client
	_, err = nilClient.Generate(context.Background(), "hi", 0.7)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
