// Package assist provides HTTP handlers backed by an external chat
// completion API for interview practice and company research.
package assist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// OpenAIRequest represents the request structure for OpenAI API
type OpenAIRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIResponse represents the response from OpenAI API
type OpenAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const chatCompletionURL = "https://api.openai.com/v1/chat/completions"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// completeChat sends the prompt to the chat completion endpoint and returns
// the raw assistant message content.
func completeChat(prompt string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	chatModel := os.Getenv("OPENAI_MODEL")

	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not configured")
	}

	if chatModel == "" {
		chatModel = "gpt-4" // Default model
	}

	requestBody := OpenAIRequest{
		Model: chatModel,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, chatCompletionURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// decodeModelJSON parses the assistant content as JSON into out, tolerating
// markdown code fences around the payload.
func decodeModelJSON(content string, out interface{}) error {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return json.Unmarshal([]byte(strings.TrimSpace(trimmed)), out)
}
