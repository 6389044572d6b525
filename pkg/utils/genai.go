package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// PlannerClientInterface abstracts the generative-text provider used for
// itinerary generation.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

const plannerTimeout = 30 * time.Second

// GeminiPlannerClient generates itineraries with Google's Gemini models.
type GeminiPlannerClient struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

func NewGeminiPlannerClient(apiKey, model string, maxTokens int32) (PlannerClientInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if maxTokens <= 0 {
		maxTokens = 8192
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (c *GeminiPlannerClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(c.maxTokens)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, plannerTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return CleanJSONResponse(content), nil
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}

// OpenAIPlannerClient is the alternate provider behind the same interface.
type OpenAIPlannerClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIPlannerClient(apiKey, model string, maxTokens int) PlannerClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	return &OpenAIPlannerClient{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *OpenAIPlannerClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, plannerTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return CleanJSONResponse(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIPlannerClient) Close() error { return nil }

// NewPlannerClient selects the provider from config.
func NewPlannerClient(provider, apiKey, model string, maxTokens int) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "gemini":
		return NewGeminiPlannerClient(apiKey, model, int32(maxTokens))
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model, maxTokens), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown fences and surrounding prose so the result
// can be parsed strictly as JSON. Models occasionally wrap output even when
// told not to.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.IndexAny(response, "{[")
	if start == -1 {
		return response
	}

	var end int
	if response[start] == '{' {
		end = findMatchingDelimiter(response, start, '{', '}')
	} else {
		end = findMatchingDelimiter(response, start, '[', ']')
	}
	if end == -1 {
		return strings.TrimSpace(response[start:])
	}
	return strings.TrimSpace(response[start : end+1])
}

func findMatchingDelimiter(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ValidJSON reports whether the payload parses as JSON at all.
func ValidJSON(content string) bool {
	return json.Valid([]byte(content))
}
