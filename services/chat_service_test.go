package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestChat(baseURL string) *ChatService {
	return &ChatService{
		apiKey:  "test-key",
		baseURL: baseURL,
		model:   "gpt-4",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func chatServer(t *testing.T, reply string, capture *chatCompletionRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if capture != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestSendMessage(t *testing.T) {
	var req chatCompletionRequest
	ts := chatServer(t, "Eat more vegetables.", &req)
	defer ts.Close()

	svc := newTestChat(ts.URL)
	reply, err := svc.SendMessage("What should I eat?")
	assert.NoError(t, err)
	assert.Equal(t, "Eat more vegetables.", reply)

	assert.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "What should I eat?", req.Messages[0].Content)
}

func TestGetFoodMacrosGenericPrompt(t *testing.T) {
	var req chatCompletionRequest
	ts := chatServer(t, "{ name: \"Big Mac\" }", &req)
	defer ts.Close()

	svc := newTestChat(ts.URL)
	result, err := svc.GetFoodMacros("Big Mac", "")
	assert.NoError(t, err)
	assert.Equal(t, "{ name: \"Big Mac\" }", result)

	assert.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, `estimated macros for "Big Mac"`)
	assert.NotContains(t, req.Messages[1].Content, "restaurant")
}

func TestGetFoodMacrosRestaurantPrompt(t *testing.T) {
	var req chatCompletionRequest
	ts := chatServer(t, "{}", &req)
	defer ts.Close()

	svc := newTestChat(ts.URL)
	_, err := svc.GetFoodMacros("Big Mac", "McDonald's")
	assert.NoError(t, err)

	prompt := req.Messages[1].Content
	assert.Contains(t, prompt, `"Big Mac" from "McDonald's" restaurant`)
	// The restaurant prompt asks for sourced-vs-estimated provenance.
	assert.Contains(t, prompt, `"official" or "estimated"`)
}

func TestChatMissingAPIKey(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer ts.Close()

	svc := newTestChat(ts.URL)
	svc.apiKey = ""
	_, err := svc.SendMessage("hello")
	assert.Error(t, err)
	assert.Equal(t, 0, requests)
}

func TestChatUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer ts.Close()

	svc := newTestChat(ts.URL)
	_, err := svc.SendMessage("hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat API error 429")
}
