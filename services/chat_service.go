package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ChatService is a stateless passthrough to an OpenAI-style chat-completion
// API, used for free-form nutrition questions and macro estimates. Upstream
// failures are reported as-is; there is no retry.
type ChatService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewChatService reads credentials from the environment; the model defaults
// to gpt-4 unless OPENAI_MODEL overrides it.
func NewChatService() *ChatService {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4"
	}
	return &ChatService{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: "https://api.openai.com/v1",
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

const nutritionistSystemPrompt = "You are a nutritional expert with access to comprehensive food and restaurant nutritional databases. Provide accurate macro information based on official sources when possible."

func (s *ChatService) complete(messages []ChatMessage) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not configured")
	}

	b, err := json.Marshal(chatCompletionRequest{Model: s.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chat API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API error %d: %s", resp.StatusCode, string(body))
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse chat JSON: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

// SendMessage forwards one user message and returns the raw reply text.
func (s *ChatService) SendMessage(message string) (string, error) {
	return s.complete([]ChatMessage{{Role: "user", Content: message}})
}

// GetFoodMacros asks the model for a macro estimate of a food, optionally
// pinned to a restaurant's menu. The reply is returned unparsed; the caller
// decides what to do with the structured-looking text.
func (s *ChatService) GetFoodMacros(foodName, restaurant string) (string, error) {
	return s.complete([]ChatMessage{
		{Role: "system", Content: nutritionistSystemPrompt},
		{Role: "user", Content: macroPrompt(foodName, restaurant)},
	})
}

func macroPrompt(foodName, restaurant string) string {
	if restaurant != "" {
		return fmt.Sprintf(`
Search for and return the official nutritional information for "%[1]s" from "%[2]s" restaurant.

If you can find the exact nutritional data from %[2]s's official menu or nutritional database, use that information. If not available, provide the best estimate based on similar items from that restaurant or comparable dishes.

Return the data in this exact JavaScript object format:

{
  name: "%[1]s",
  restaurant: "%[2]s",
  calories: number,
  protein: number, // grams
  carbs: number,   // grams
  fat: number,     // grams
  source: "official" or "estimated"
}

Just return the object only, nothing else.
`, foodName, restaurant)
	}
	return fmt.Sprintf(`
Return the estimated macros for "%s" in the following JavaScript object format:

{
  name: "%[1]s",
  calories: number,
  protein: number, // grams
  carbs: number,   // grams
  fat: number      // grams
}

Just return the object only, nothing else.
`, foodName)
}
